package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	MongoURI     string
	DatabaseName string

	// EmailJS credentials; notifications are disabled when empty.
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string

	// Suggestion service base URL; AI routes are disabled when empty.
	AIServiceURL string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("youpick", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.MongoURI, "m", "", "MongoDB connection URI")
	fs.StringVar(&cfg.DatabaseName, "db", "", "MongoDB database name")

	// External collaborators (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.EmailJSServiceID, "emailjs-service", "", "EmailJS service id (prefer env)")
	fs.StringVar(&cfg.EmailJSTemplateID, "emailjs-template", "", "EmailJS template id (prefer env)")
	fs.StringVar(&cfg.EmailJSPublicKey, "emailjs-key", "", "EmailJS public key (prefer env)")
	fs.StringVar(&cfg.AIServiceURL, "ai", "", "Suggestion service base URL")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	}

	if cfg.DatabaseName == "" {
		cfg.DatabaseName = os.Getenv("MONGODB_DB")
		if cfg.DatabaseName == "" {
			cfg.DatabaseName = "users"
		}
	}

	if cfg.EmailJSServiceID == "" {
		cfg.EmailJSServiceID = os.Getenv("EMAILJS_SERVICE_ID")
	}
	if cfg.EmailJSTemplateID == "" {
		cfg.EmailJSTemplateID = os.Getenv("EMAILJS_TEMPLATE_ID")
	}
	if cfg.EmailJSPublicKey == "" {
		cfg.EmailJSPublicKey = os.Getenv("EMAILJS_PUBLIC_KEY")
	}

	if cfg.AIServiceURL == "" {
		cfg.AIServiceURL = os.Getenv("AI_SERVICE_URL")
	}

	return cfg, nil
}

// EmailJSConfigured reports whether all three EmailJS settings are present.
func (c Config) EmailJSConfigured() bool {
	return c.EmailJSServiceID != "" && c.EmailJSTemplateID != "" && c.EmailJSPublicKey != ""
}
