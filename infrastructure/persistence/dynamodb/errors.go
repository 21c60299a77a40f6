package dynamodb

import (
	"errors"

	pkgerrors "games-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// storeError maps a DynamoDB client error onto the application error kinds.
// A failed condition becomes a conflict; everything else is a store failure
// tagged with the service error code when one is available.
func storeError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return pkgerrors.NewConflictError("a game with this id and title already exists").WithCause(err)
	}

	appErr := pkgerrors.NewStoreFailureError(operation, err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		appErr = appErr.WithCode(apiErr.ErrorCode())
	}

	return appErr
}
