//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewImage,
	NewOfficeDAO,
	NewReviewDAO,
	NewReviewVoteDAO,
	NewOfficeVoteDAO,
	NewNotificationDAO,
	NewStatsDAO,
)
