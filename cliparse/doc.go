// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - MongoURI: MongoDB connection URI (in-memory store when empty)
  - DatabaseName: MongoDB database name (default: "users")
  - EmailJSServiceID / EmailJSTemplateID / EmailJSPublicKey: notification
    credentials (notifications disabled when any is empty)
  - AIServiceURL: suggestion service base URL (AI routes disabled when empty)

# CLI Flags

	-p                Server port
	-m                MongoDB URI
	-db               Database name
	--emailjs-service EmailJS service id
	--emailjs-template EmailJS template id
	--emailjs-key     EmailJS public key
	--ai              Suggestion service URL

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	MONGODB_URI         → -m
	MONGODB_DB          → -db
	EMAILJS_SERVICE_ID  → --emailjs-service
	EMAILJS_TEMPLATE_ID → --emailjs-template
	EMAILJS_PUBLIC_KEY  → --emailjs-key
	AI_SERVICE_URL      → --ai

CLI flags take precedence over environment variables. Nothing is
strictly required: with no MongoDB URI the server runs on the volatile
in-memory store, which is only suitable for development.
*/
package cliparse
