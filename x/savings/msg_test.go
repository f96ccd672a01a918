package savings_test

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"

	"github.com/iov-one/savings/x/savings"
)

func TestCreateGoalMsgValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msg     savings.CreateGoalMsg
		wantErr *errors.Error
	}{
		"valid message": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				Amount:       1000,
				LockDuration: 3600,
				InterestRate: 500,
			},
		},
		"zero interest rate is allowed": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				Amount:       1000,
				LockDuration: 3600,
			},
		},
		"missing metadata": {
			msg: savings.CreateGoalMsg{
				Owner:        owner,
				Amount:       1000,
				LockDuration: 3600,
			},
			wantErr: errors.ErrMetadata,
		},
		"missing owner": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Amount:       1000,
				LockDuration: 3600,
			},
			wantErr: errors.ErrEmpty,
		},
		"zero amount": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				LockDuration: 3600,
			},
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				Amount:       -1,
				LockDuration: 3600,
			},
			wantErr: errors.ErrAmount,
		},
		"zero lock duration": {
			msg: savings.CreateGoalMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner,
				Amount:   1000,
			},
			wantErr: errors.ErrInput,
		},
		"excessive lock duration": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				Amount:       1000,
				LockDuration: 11 * 365 * 24 * 60 * 60,
			},
			wantErr: errors.ErrInput,
		},
		"excessive interest rate": {
			msg: savings.CreateGoalMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        owner,
				Amount:       1000,
				LockDuration: 3600,
				InterestRate: 5001,
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v but got %+v", tc.wantErr, err)
			}
		})
	}
}

func TestGoalReferenceMsgsValidate(t *testing.T) {
	owner := weavetest.NewCondition().Address()

	msgs := map[string]weave.Msg{
		"compound": &savings.CompoundMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			GoalId:   1,
		},
		"withdraw": &savings.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			GoalId:   1,
		},
		"emergency withdraw": &savings.EmergencyWithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			GoalId:   1,
		},
		"balance": &savings.BalanceMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
			GoalId:   1,
		},
	}
	for name, msg := range msgs {
		t.Run(name, func(t *testing.T) {
			if err := msg.Validate(); err != nil {
				t.Fatalf("valid message rejected: %+v", err)
			}
		})
	}

	missing := map[string]weave.Msg{
		"compound": &savings.CompoundMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
		"withdraw": &savings.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
		"emergency withdraw": &savings.EmergencyWithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
		"balance": &savings.BalanceMsg{
			Metadata: &weave.Metadata{Schema: 1},
		},
	}
	for name, msg := range missing {
		t.Run(name+" without owner", func(t *testing.T) {
			if err := msg.Validate(); !errors.ErrEmpty.Is(err) {
				t.Fatalf("expected empty error, got %+v", err)
			}
		})
	}
}

func TestUpdateConfigurationMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     savings.UpdateConfigurationMsg
		wantErr *errors.Error
	}{
		"valid patch": {
			msg: savings.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &savings.Configuration{
					EmergencyPenalty: 2500,
				},
			},
		},
		"missing patch": {
			msg: savings.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			wantErr: errors.ErrInput,
		},
		"penalty above 100 percent": {
			msg: savings.UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &savings.Configuration{
					EmergencyPenalty: 10001,
				},
			},
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if err := tc.msg.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("expected %+v but got %+v", tc.wantErr, err)
			}
		})
	}
}
