package config

// Jwt 令牌配置
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	AccessExpire  int64  `json:"access_expire" yaml:"access_expire"`   // 访问令牌有效期(秒)
	RefreshExpire int64  `json:"refresh_expire" yaml:"refresh_expire"` // 刷新令牌有效期(秒)
}
