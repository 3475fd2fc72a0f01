//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAlertUseCase_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		resolved bool
		wantErr  error
	}{
		{name: "open alert", resolved: true},
		{name: "missing or already resolved", resolved: false, wantErr: commands.ErrAlertNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			f := newTxFixture(ctrl)
			id := uuid.New()
			f.alerts.EXPECT().Resolve(gomock.Any(), gomock.Any(), id, testNow).Return(tt.resolved, nil)

			err := commands.NewAlertUseCase(f.uow, clock.NewMockClock(testNow)).Resolve(context.Background(), id)

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
		})
	}
}
