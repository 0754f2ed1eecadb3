package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// DefaultRecipient receives submissions when no destination address is
// configured for a pipeline.
const DefaultRecipient = "wiemmimouni74@gmail.com"

type rawCfg struct {
	// Email delivery configuration
	ResendAPIKey string `long:"resend-api-key" env:"RESEND_API_KEY" description:"Resend API key used by the email dispatcher"`
	ContactTo    string `long:"contact-to" env:"CONTACT_TO_EMAIL" description:"Recipient address(es) for contact inquiries, comma or semicolon separated"`
	DevReqTo     string `long:"devreq-to" env:"DEVREQ_TO_EMAIL" description:"Recipient address(es) for developer requests (falls back to contact recipients)"`
	FromAddress  string `long:"from" env:"CONTACT_FROM_EMAIL" default:"Portfolio <onboarding@resend.dev>" description:"Sender address shared by both pipelines"`

	// Application configuration
	ContentDir string `long:"content-dir" env:"CONTENT_DIR" default:"./content" description:"Directory containing static content collections"`
	Port       string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`

	// Application metadata
	Timezone string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug    bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ResendAPIKey: raw.ResendAPIKey,
		ContactTo:    raw.ContactTo,
		DevReqTo:     raw.DevReqTo,
		FromAddress:  raw.FromAddress,
		ContentDir:   raw.ContentDir,
		Port:         raw.Port,
		Timezone:     raw.Timezone,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
