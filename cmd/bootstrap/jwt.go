package bootstrap

import (
	"time"

	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/config"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/errs"
	"github.com/B1gB4dB4ng/HotelApp/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// Only verification happens here; the duration matters for tokens minted by tests and tooling.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	var opts []jwt.Option
	if cfg.JWT.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.JWT.Issuer))
	}
	return jwt.NewService(cfg.JWT.Secret, duration, opts...), nil
}
