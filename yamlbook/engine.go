package yamlbook

// Engine records where a move's evaluation came from.
type Engine struct {
	ID     string          `yaml:"id,omitempty"`
	Output []*EngineOutput `yaml:"output"`
}

func (e *Engine) Log(logLine LogLine) {
	e.Output = append(e.Output, &EngineOutput{Line: logLine})
}

type EngineOutput struct {
	Line LogLine `yaml:"log,flow"`
}

// LogLine is one analysis line; PV is in SAN.
type LogLine struct {
	Depth int    `yaml:"depth"`
	CP    int    `yaml:"cp"`
	Mate  int    `yaml:"mate,omitempty"`
	Nodes int    `yaml:"nodes,omitempty"`
	Time  int    `yaml:"time,omitempty"`
	PV    string `yaml:"pv"`
}
