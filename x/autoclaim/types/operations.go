package types

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// OperationKind tags the outbound operation union.
type OperationKind string

const (
	// OperationExecContract asks the host to execute a JSON command on a
	// contract as if the user had authorized it.
	OperationExecContract OperationKind = "exec_contract"

	// OperationSend asks the host to transfer coins from the user to a
	// recipient address.
	OperationSend OperationKind = "send"
)

// ExecContractOp executes Msg on Contract on behalf of User, optionally
// attaching Funds. The wire encoding of the authorization instruction is the
// host's concern.
type ExecContractOp struct {
	User     string          `json:"user"`
	Contract string          `json:"contract"`
	Msg      json.RawMessage `json:"msg"`
	Funds    sdk.Coins       `json:"funds,omitempty"`
}

// SendOp transfers Amount from User to ToAddress.
type SendOp struct {
	User      string    `json:"user"`
	ToAddress string    `json:"to_address"`
	Amount    sdk.Coins `json:"amount"`
}

// Operation is the tagged union handed to the operation host. The host
// settles it asynchronously and delivers exactly one Reply for the handle it
// was dispatched under.
type Operation struct {
	Kind         OperationKind   `json:"kind"`
	ExecContract *ExecContractOp `json:"exec_contract,omitempty"`
	Send         *SendOp         `json:"send,omitempty"`
}

// Reply reports the settlement outcome of a dispatched operation, correlated
// by the handle it was dispatched under.
type Reply struct {
	Handle  uint64 `json:"handle"`
	Success bool   `json:"success"`
	Err     string `json:"err,omitempty"`
}

// claim payloads per staking provider, matching the contract APIs

type daodaoClaimMsg struct {
	Claim daodaoClaimParams `json:"claim"`
}

type daodaoClaimParams struct {
	Id uint64 `json:"id"`
}

type cwRewardsClaimMsg struct {
	ClaimRewards struct{} `json:"claim_rewards"`
}

type finWithdrawMsg struct {
	WithdrawOrders struct{} `json:"withdraw_orders"`
}

type stakeMsg struct {
	Stake struct{} `json:"stake"`
}

// DAODAO distributions use a single well-known distribution id.
const daodaoClaimId = uint64(2)

// NewClaimOperation builds the claim instruction for a claim-and-stake
// protocol, selecting the payload by staking provider.
func NewClaimOperation(provider StakingProvider, user, claimContract string) (Operation, error) {
	var payload any
	switch provider {
	case ProviderDAODAO:
		payload = daodaoClaimMsg{Claim: daodaoClaimParams{Id: daodaoClaimId}}
	case ProviderCWRewards:
		payload = cwRewardsClaimMsg{}
	default:
		return Operation{}, fmt.Errorf("unknown staking provider %q", provider)
	}

	msg, err := json.Marshal(payload)
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		Kind: OperationExecContract,
		ExecContract: &ExecContractOp{
			User:     user,
			Contract: claimContract,
			Msg:      msg,
		},
	}, nil
}

// NewFINWithdrawOperation builds the withdraw-orders instruction for a
// claim-only FIN market.
func NewFINWithdrawOperation(user, marketContract string) (Operation, error) {
	msg, err := json.Marshal(finWithdrawMsg{})
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		Kind: OperationExecContract,
		ExecContract: &ExecContractOp{
			User:     user,
			Contract: marketContract,
			Msg:      msg,
		},
	}, nil
}

// NewStakeOperation builds the stake instruction, attaching the staked coins
// as funds.
func NewStakeOperation(user, stakeContract string, amount sdk.Coin) (Operation, error) {
	msg, err := json.Marshal(stakeMsg{})
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		Kind: OperationExecContract,
		ExecContract: &ExecContractOp{
			User:     user,
			Contract: stakeContract,
			Msg:      msg,
			Funds:    sdk.NewCoins(amount),
		},
	}, nil
}

// NewSendOperation builds the fee transfer instruction.
func NewSendOperation(user, toAddress string, amount sdk.Coin) Operation {
	return Operation{
		Kind: OperationSend,
		Send: &SendOp{
			User:      user,
			ToAddress: toAddress,
			Amount:    sdk.NewCoins(amount),
		},
	}
}
