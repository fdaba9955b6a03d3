package api

import (
	"errors"

	"StockPulse/internal/services/indicators"
	xhttp "StockPulse/pkg/http"
)

// engineError maps engine sentinel errors onto transport-level AppErrors.
// Malformed input is a 400; well-formed input the engine cannot compute on
// (degenerate, misaligned) is a 422.
func engineError(err error) error {
	switch {
	case errors.Is(err, indicators.ErrInvalidSeries):
		return xhttp.BadRequestError("ERR_INVALID_SERIES", err.Error()).WithError(err)
	case errors.Is(err, indicators.ErrInvalidWindow):
		return xhttp.BadRequestError("ERR_INVALID_WINDOW", err.Error()).WithError(err)
	case errors.Is(err, indicators.ErrDegenerateSeries):
		return xhttp.UnprocessableError("ERR_DEGENERATE_SERIES", err.Error()).WithError(err)
	case errors.Is(err, indicators.ErrMisalignedSeries):
		return xhttp.UnprocessableError("ERR_MISALIGNED_SERIES", err.Error()).WithError(err)
	case errors.Is(err, indicators.ErrInvalidWeights):
		return xhttp.UnprocessableError("ERR_INVALID_WEIGHTS", err.Error()).WithError(err)
	default:
		return err
	}
}
