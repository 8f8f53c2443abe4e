// Package config provides configuration handling for gitpix.
//
// # Configuration Sources
//
// Values are merged with the following precedence:
//
// 1. Command-line flags (highest priority)
// 2. GITPIX_* environment variables
// 3. A YAML file named by --config or GITPIX_CONFIG
// 4. Default values (lowest priority)
//
// # Environment Variables
//
//	GITPIX_REPO_PATH       Path to repository (default: current directory)
//	GITPIX_WEIGHT          Commits per background cell (default: 10)
//	GITPIX_MESSAGE_PREFIX  Commit message prefix (default: "pixel")
//	GITPIX_PROGRESS_EVERY  Progress line every N commits (default: 200)
//	GITPIX_STRICT          Exit non-zero when a commit fails (default: false)
//	GITPIX_VERBOSE         Show informational messages (default: true)
//	GITPIX_DEBUG           Enable debug logging (default: false)
//	GITPIX_LOG_FILE        Path to log file
//	GITPIX_CONFIG          Path to a YAML config file
//
// # Config File
//
//	repo: /home/me/src/art
//	weight: 12
//	message_prefix: pixel
//	progress_every: 500
//	strict: true
//
// # Usage
//
//	cfg := config.New()
//	if path := config.FindConfigPath(os.Args[1:]); path != "" {
//	    if err := cfg.LoadFile(path); err != nil {
//	        // Handle error
//	    }
//	}
//	cfg.LoadFromEnvironment()
//	cfg.SetupFlags(flags)
//	// parse flags
//	cfg.ApplyFlags()
//	if err := cfg.Finalize(); err != nil {
//	    // Handle error
//	}
package config
