package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Name  string `json:"name" yaml:"name"`
	Debug bool   `json:"debug" yaml:"debug"`
}
