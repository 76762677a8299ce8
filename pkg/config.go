package pkg

import (
	"os"
	"path"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config comes from the environment with the CHESSVOICE_ prefix.
type Config struct {
	ServerPort  string        `envconfig:"PORT" default:":1998"`
	SshPort     string        `envconfig:"SSH_PORT" default:":2222"`
	HostKeyFile string        `envconfig:"HOST_KEY"`
	ClientBin   string        `envconfig:"CLIENT_BIN" default:"chessvoice"`
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT" default:"5m"`
	LogPath     string        `envconfig:"LOG" default:"./log"`
	Theme       string        `envconfig:"THEME" default:"basic"`
}

func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("chessvoice", &c); err != nil {
		return Config{}, err
	}
	if c.HostKeyFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		c.HostKeyFile = path.Join(home, ".ssh", "id_rsa")
	}
	return c, nil
}
