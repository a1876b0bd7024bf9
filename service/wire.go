package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(OfficeService), "*"),
	wire.Bind(new(IOfficeService), new(*OfficeService)),

	wire.Struct(new(ReviewService), "*"),
	wire.Bind(new(IReviewService), new(*ReviewService)),

	wire.Struct(new(ReviewVoteService), "*"),
	wire.Bind(new(IReviewVoteService), new(*ReviewVoteService)),

	wire.Struct(new(OfficeVoteService), "*"),
	wire.Bind(new(IOfficeVoteService), new(*OfficeVoteService)),

	wire.Struct(new(ModerationService), "*"),
	wire.Bind(new(IModerationService), new(*ModerationService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	NewEventPublisher,
	NewOssService,
)
