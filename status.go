package sdk

import (
	"errors"
	"fmt"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
)

// Host status codes follow HTTP conventions: 200/206 succeed, 400/404/500
// report a host-side failure, anything else is out of contract.
const (
	statusOK       = int32(200)
	statusPartial  = int32(206)
	statusBadInput = int32(400)
	statusMissing  = int32(404)
	statusError    = int32(500)
)

// ValidateStatus maps a host response Status onto the shared error taxonomy.
// callErr, when non-nil, is the transport-level error from the host call and
// is joined into whatever error is produced so callers can match either
// layer with errors.Is. A nil status is treated as an invalid response, a
// failure code yields ErrHostError with the host's detail text, and an
// unknown code yields ErrHostResponseInvalid.
func ValidateStatus(status *sdkproto.Status, callErr error) error {
	if status == nil {
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid)
		}
		return ErrHostResponseInvalid
	}

	code := status.GetCode()
	switch code {
	case statusOK, statusPartial:
		return nil
	case statusBadInput, statusMissing, statusError:
		detail := fmt.Sprintf("host status %d", code)
		if msg := status.GetStatus(); msg != "" {
			detail = fmt.Sprintf("%s: %s", detail, msg)
		}
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostError, errors.New(detail))
		}
		return errors.Join(ErrHostError, errors.New(detail))
	default:
		statusErr := fmt.Errorf("unexpected host status code %d", code)
		if callErr != nil {
			return errors.Join(ErrHostCall, callErr, ErrHostResponseInvalid, statusErr)
		}
		return errors.Join(ErrHostResponseInvalid, statusErr)
	}
}
