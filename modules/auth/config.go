package auth

import "time"

// Config carries the token signing material. Access and refresh tokens use
// separate secrets so leaking one does not compromise the other.
type Config struct {
	AccessSecret  string        `env:"JWT_ACCESS_SECRET,required"`
	AccessTTL     time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshSecret string        `env:"JWT_REFRESH_SECRET,required"`
	RefreshTTL    time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
}
