package config

// ModerationConfig 审核配置
// FlagThreshold: 触发自动转入 flagged 状态的举报票数
// InitialStatus: 新评价的初始状态，由评价目录策略决定 (pending / approved)
type ModerationConfig struct {
	FlagThreshold int    `json:"flag_threshold" yaml:"flag_threshold"`
	InitialStatus string `json:"initial_status" yaml:"initial_status"`
}

func DefaultModeration() *ModerationConfig {
	return &ModerationConfig{
		FlagThreshold: 3,
		InitialStatus: "approved",
	}
}

func ProvideModerationConfig(cfg *Config) *ModerationConfig {
	if cfg.Moderation == nil {
		return DefaultModeration()
	}
	return cfg.Moderation
}
