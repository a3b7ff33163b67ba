// Package settings defines application-level configuration data.
package settings

// LLMConfig defines text-generation provider settings. The API key is never
// written back to the config file; it comes from the environment.
type LLMConfig struct {
	APIKey  string `yaml:"-" kong:"help='OpenAI API key',env='OPENAI_API_KEY'"`
	Model   string `yaml:"model" kong:"help='Chat-completion model',env='OPENAI_MODEL',default='gpt-4o-mini'"`
	BaseURL string `yaml:"base_url" kong:"help='OpenAI-compatible endpoint override',env='OPENAI_BASE_URL'"`
}

// Settings represents the application configuration.
type Settings struct {
	Addr         string    `yaml:"addr" kong:"help='HTTP listen address',default=':8080'"`
	DatabaseFile string    `yaml:"database_file" kong:"help='SQLite database path'"`
	LLM          LLMConfig `yaml:"llm" kong:"embed,prefix='llm.'"`
}
