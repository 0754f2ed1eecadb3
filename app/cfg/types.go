package cfg

type Cfg struct {
	// Email delivery configuration
	ResendAPIKey string
	ContactTo    string
	DevReqTo     string
	FromAddress  string

	// Application configuration
	ContentDir string
	Port       string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
