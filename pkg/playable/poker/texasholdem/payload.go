package texasholdem

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	"pokervm/pkg/playable"
	"pokervm/pkg/playable/poker/action"
)

// RequestFromPayload converts a client payload into an ActionRequest
func RequestFromPayload(address string, payload *playable.PayloadIn) (ActionRequest, error) {
	kind, err := action.FromString(payload.Action)
	if err != nil {
		return ActionRequest{}, wrapIllegalAction(action.Action(payload.Action), CategoryMalformed, ErrUnknownAction)
	}

	req := ActionRequest{
		Address: address,
		Action:  kind,
		Index:   payload.Index,
		Data:    payload.Data,
	}

	if payload.Amount != "" {
		amount, err := sdkmath.ParseUint(payload.Amount)
		if err != nil {
			return ActionRequest{}, newIllegalAction(kind, CategoryMalformed, "invalid amount: %s", payload.Amount)
		}

		req.Amount = &amount
	}

	if req.Index < 0 {
		return ActionRequest{}, newIllegalAction(kind, CategoryMalformed, "index must be >= 0")
	}

	return req, nil
}

// String is used in log output
func (r ActionRequest) String() string {
	amount := "-"
	if r.Amount != nil {
		amount = r.Amount.String()
	}

	return fmt.Sprintf("#%d %s %s %s %q", r.Index, r.Address, r.Action, amount, r.Data)
}
