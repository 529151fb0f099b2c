package analysisconfig

// Config는 상관관계 분석 파이프라인의 전체 설정
type Config struct {
	Analysis Analysis `yaml:"analysis" json:"analysis"`
	Report   Report   `yaml:"report" json:"report"`
}

// Analysis holds scoring thresholds
type Analysis struct {
	// 변화율 레코드 최소 개수 (미만이면 종목 제외)
	MinSamples int `yaml:"min_samples" json:"min_samples" default:"6" validate:"gte=6"`
	// 보고할 상위 종목 수
	TopN int `yaml:"top_n" json:"top_n" default:"5" validate:"gte=1,lte=100"`
}

// Report holds rendering options
type Report struct {
	// 상관계수 소수점 자리수
	Precision int `yaml:"precision" json:"precision" default:"4" validate:"gte=0,lte=10"`
}

// Default returns the settings used when no YAML file is given
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
