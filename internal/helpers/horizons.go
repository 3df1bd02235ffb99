package helpers

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	apierrors "dashboard/internal/errors"
	"dashboard/internal/models"
)

// ParseHorizons parses a comma separated list of forecast horizons, keeping
// the selection order. Unknown and repeated horizons are rejected.
func ParseHorizons(raw string) ([]int, error) {
	horizons := []int{}
	if strings.TrimSpace(raw) == "" {
		return horizons, nil
	}

	for _, part := range strings.Split(raw, ",") {
		horizon, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, apierrors.ErrHorizon.Wrap(err)
		}
		if !slices.Contains(models.AllowedForecastHorizons, horizon) {
			return nil, apierrors.ErrHorizon.Wrap(fmt.Errorf("horizon %d is not selectable", horizon))
		}
		if slices.Contains(horizons, horizon) {
			return nil, apierrors.ErrHorizon.Wrap(fmt.Errorf("horizon %d selected twice", horizon))
		}
		horizons = append(horizons, horizon)
	}

	return horizons, nil
}
