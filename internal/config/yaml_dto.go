package config

type YAMLAxis struct {
	Source string `yaml:"source"`
	Margin int    `yaml:"margin"`
}

type YAMLSizing struct {
	Width  YAMLAxis `yaml:"width"`
	Height YAMLAxis `yaml:"height"`
}

type YAMLSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type YAMLModule struct {
	Script string `yaml:"script"`
	Global string `yaml:"global"`
}

type YAMLLog struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type YAMLHost struct {
	Viewport  YAMLSize `yaml:"viewport"`
	Container YAMLSize `yaml:"container"`
}

type YAMLWindow struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type YAMLDeployment struct {
	Surface   string     `yaml:"surface"`
	Sizing    YAMLSizing `yaml:"sizing"`
	Callbacks []string   `yaml:"callbacks"`
	Loop      string     `yaml:"loop"`
	Contain   bool       `yaml:"contain"`
	Module    YAMLModule `yaml:"module"`
	Log       YAMLLog    `yaml:"log"`
	Host      YAMLHost   `yaml:"host"`
	Window    YAMLWindow `yaml:"window"`
}
