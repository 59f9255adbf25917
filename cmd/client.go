package cmd

import (
	"github.com/pkg/errors"

	"github.com/twinops/twinctl/pkg/config"
	"github.com/twinops/twinctl/pkg/session"
	"github.com/twinops/twinctl/pkg/twinapi"
)

// loadSetup loads config plus the active session and builds the API
// client. Every command that talks to the backend goes through here so
// a missing session aborts before any network call.
func loadSetup() (cfg config.Config, sess session.Session, client *twinapi.Client, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, sess, client, err
	}

	sessionPath := cfg.SessionPath
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			return cfg, sess, client, err
		}
	}

	sess, err = session.Load(sessionPath)
	if err != nil {
		return cfg, sess, client, err
	}

	token := cfg.AuthToken
	if sess.AuthToken != "" {
		token = sess.AuthToken
	}

	client = twinapi.New(cfg.APIBaseURL, token)
	return cfg, sess, client, err
}

// sessionFilePath resolves the session file from config or the default
// location.
func sessionFilePath() (path string, err error) {
	cfg, cfgErr := config.Load(getConfigFile())
	if cfgErr == nil && cfg.SessionPath != "" {
		path = cfg.SessionPath
		return path, err
	}
	path, err = session.DefaultPath()
	return path, err
}
