package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 对外短码的加盐值，上线后不可变更，否则已发布的短码全部失效
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
}
