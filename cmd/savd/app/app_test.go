package app

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"

	"github.com/iov-one/savings/x/savings"
)

const testTicker = "SAV"

var genesisTime = time.Unix(1600000000, 0).UTC()

func newTestApp(t *testing.T) weaveapp.BaseApp {
	t.Helper()
	abciApp, err := GenerateApp(&server.Options{
		Home:   "",
		Logger: log.NewNopLogger(),
		Debug:  false,
		MinFee: coin.Coin{},
	})
	require.NoError(t, err)
	return abciApp.(weaveapp.BaseApp)
}

func initChain(t *testing.T, myApp weaveapp.BaseApp, chainID string, alice, admin weave.Address) {
	t.Helper()
	appState := fmt.Sprintf(`{
		"cash": [
			{"address": %q, "coins": [{"whole": 1000, "ticker": %q}]},
			{"address": %q, "coins": [{"whole": 1000, "ticker": %q}]}
		],
		"conf": {
			"cash": {
				"collector_address": %q,
				"minimal_fee": {"whole": 0}
			},
			"savings": {
				"owner": %q,
				"ticker": %q,
				"emergency_penalty": 1000
			},
			"migration": {
				"admin": %q
			}
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "savings", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1}
		]
	}`, alice, testTicker, admin, testTicker, admin, admin, testTicker, admin)
	myApp.InitChain(abci.RequestInitChain{
		AppStateBytes: []byte(appState),
		ChainId:       chainID,
	})

	// Commit an empty first block so the genesis state is visible to
	// CheckTx as well.
	header := abci.Header{Height: 1, Time: genesisTime}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	require.NotEmpty(t, myApp.Commit().Data)
}

// deliverTx signs, checks and delivers the transaction within its own block.
func deliverTx(t *testing.T, myApp weaveapp.BaseApp, height int64, at time.Time, signer *crypto.PrivateKey, seq int64, tx *Tx) abci.ResponseDeliverTx {
	t.Helper()
	sig, err := sigs.SignTx(signer, tx, myApp.GetChainID(), seq)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	txBytes, err := tx.Marshal()
	require.NoError(t, err)

	header := abci.Header{Height: height, Time: at}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	chres := myApp.CheckTx(txBytes)
	require.Equal(t, uint32(0), chres.Code, chres.Log)
	dres := myApp.DeliverTx(txBytes)
	require.Equal(t, uint32(0), dres.Code, dres.Log)
	myApp.EndBlock(abci.RequestEndBlock{})
	require.NotEmpty(t, myApp.Commit().Data)
	return dres
}

func queryWallet(t *testing.T, myApp weaveapp.BaseApp, addr weave.Address) coin.Coins {
	t.Helper()
	qres := myApp.Query(abci.RequestQuery{Path: "/wallets", Data: addr})
	require.Equal(t, uint32(0), qres.Code, "%#v", qres)
	if len(qres.Value) == 0 {
		return nil
	}
	var acct cash.Set
	require.NoError(t, weaveapp.UnmarshalOneResult(qres.Value, &acct))
	return acct.Coins
}

func TestSavingsLifecycle(t *testing.T) {
	chainID := "savings-test-1"
	myApp := newTestApp(t)

	alice := crypto.GenPrivKeyEd25519()
	admin := crypto.GenPrivKeyEd25519()
	aliceAddr := alice.PublicKey().Address()
	adminAddr := admin.PublicKey().Address()

	initChain(t, myApp, chainID, aliceAddr, adminAddr)

	// Lock one whole token for a year at 10%.
	const year = 365 * 24 * 60 * 60
	dres := deliverTx(t, myApp, 2, genesisTime, alice, 0, &Tx{
		Sum: &Tx_CreateGoalMsg{&savings.CreateGoalMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			Owner:        aliceAddr,
			Amount:       coin.FracUnit,
			LockDuration: year,
			InterestRate: 1000,
		}},
	})
	goalKey := dres.Data
	require.NotEmpty(t, goalKey)

	// The goal is stored and queryable.
	qres := myApp.Query(abci.RequestQuery{Path: "/savgoals", Data: goalKey})
	require.Equal(t, uint32(0), qres.Code, "%#v", qres)
	var goal savings.SavingsGoal
	require.NoError(t, weaveapp.UnmarshalOneResult(qres.Value, &goal))
	assert.Equal(t, savings.GoalActive, goal.Status)
	assert.Equal(t, int64(coin.FracUnit), goal.Principal)

	// The deposit left the wallet.
	coins := queryWallet(t, myApp, aliceAddr)
	require.Equal(t, 1, len(coins))
	assert.Equal(t, int64(999), coins[0].Whole)

	// A year later the goal is withdrawn with 10% interest.
	unlocked := genesisTime.Add(year * time.Second)
	deliverTx(t, myApp, 3, unlocked, alice, 1, &Tx{
		Sum: &Tx_WithdrawMsg{&savings.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    aliceAddr,
			GoalId:   0,
		}},
	})

	coins = queryWallet(t, myApp, aliceAddr)
	require.Equal(t, 1, len(coins))
	assert.Equal(t, int64(1000), coins[0].Whole)
	assert.Equal(t, int64(coin.FracUnit/10), coins[0].Fractional)

	// The interest came out of the treasury.
	coins = queryWallet(t, myApp, adminAddr)
	require.Equal(t, 1, len(coins))
	assert.Equal(t, int64(999), coins[0].Whole)
	assert.Equal(t, int64(coin.FracUnit-coin.FracUnit/10), coins[0].Fractional)
}

func TestGenInitOptions(t *testing.T) {
	raw, err := GenInitOptions(nil)
	require.NoError(t, err)

	var opts weave.Options
	require.NoError(t, json.Unmarshal(raw, &opts))
	require.Contains(t, opts, "cash")
	require.Contains(t, opts, "conf")
	require.Contains(t, opts, "initialize_schema")

	var conf weave.Options
	require.NoError(t, opts.ReadOptions("conf", &conf))
	var sconf savings.Configuration
	require.NoError(t, conf.ReadOptions("savings", &sconf))
	require.NoError(t, sconf.Validate())
}
