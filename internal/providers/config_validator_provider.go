package providers

import (
	"errors"
	"fmt"
	"npd/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors
	}

	if len(cv.conf.Stations) == 0 {
		return errors.New("at least one station must be configured")
	}

	seen := make(map[string]struct{}, len(cv.conf.Stations))
	for _, s := range cv.conf.Stations {
		sv := validate.Struct(s)
		if !sv.Validate() {
			return fmt.Errorf("station %q: %w", s.ID, sv.Errors)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("duplicate station id %q", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	return nil
}
