package config

type Config interface {
	GrantConfig
}

type mainConfig struct {
	Grant
}

func New() Config {
	return mainConfig{}
}
