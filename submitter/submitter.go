package submitter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tranvictor/txsubmit/common"
	"github.com/tranvictor/txsubmit/util/account"
	"github.com/tranvictor/txsubmit/util/broadcaster"
)

// Request is everything one submission needs. It is owned by the call and
// never stored.
type Request struct {
	Params       common.TxParams
	PrivateKey   string
	NodeEndpoint string
}

// TxSigner turns tx params and a private key into a signed raw tx ready for
// eth_sendRawTransaction. It may talk to nodeEndpoint to learn the chain id.
type TxSigner interface {
	Sign(ctx context.Context, params common.TxParams, privateKey string, nodeEndpoint string) (string, error)
}

// RawTxSender is satisfied by broadcaster.Broadcaster.
type RawTxSender interface {
	Broadcast(ctx context.Context, endpoint string, data string) (*broadcaster.Response, error)
}

var (
	_ TxSigner    = (*account.EndpointSigner)(nil)
	_ RawTxSender = (*broadcaster.Broadcaster)(nil)
)

type Option func(*Submitter)

func WithMetrics(m *Metrics) Option {
	return func(s *Submitter) {
		s.metrics = m
	}
}

// Submitter signs a tx, sends it with eth_sendRawTransaction and reports
// the outcome as a Result. It holds no per-call state and can be shared by
// concurrent callers.
//
// A submission is attempted exactly once. Resending a signed tx is a
// decision with on-chain consequences and belongs to the caller.
type Submitter struct {
	signer  TxSigner
	sender  RawTxSender
	log     zerolog.Logger
	metrics *Metrics
}

func New(signer TxSigner, sender RawTxSender, log zerolog.Logger, opts ...Option) *Submitter {
	s := &Submitter{
		signer: signer,
		sender: sender,
		log:    log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit never panics and never returns an error: every failure ends up
// in the ERROR variant of the returned Result.
func (s *Submitter) Submit(ctx context.Context, req Request) (result Result) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	log := s.log.With().Str("submission_id", uuid.NewString()).Logger()

	defer func() {
		if r := recover(); r != nil {
			result = s.unexpected(log, panicError(r))
		}
		s.metrics.observe(result, time.Since(start))
	}()

	payload, err := s.signer.Sign(ctx, req.Params, req.PrivateKey, req.NodeEndpoint)
	if err != nil {
		return s.unexpected(log, err)
	}
	if hash, err := common.RawTxToHash(payload); err == nil {
		log = log.With().Str("tx_hash", hash).Logger()
	}

	resp, err := s.sender.Broadcast(ctx, req.NodeEndpoint, payload)
	if err != nil {
		return s.unexpected(log, err)
	}
	if resp.HasError() {
		message := resp.ErrorMessage()
		log.Warn().
			Int("rpc_code", resp.RPCError().Code).
			Str("rpc_message", message).
			Msg("node rejected the tx")
		return Failure(CodeNodeRejected, ErrorDetail{
			Title:  broadcaster.MethodSendRawTransaction + " error",
			Detail: message,
			Meta: map[string]interface{}{
				"nodeResponse": resp.Raw,
			},
			Stack: titleGeneric,
		})
	}

	txID, err := resp.TxHash()
	if err != nil {
		return s.unexpected(log, err)
	}
	log.Info().Str("tx_id", txID).Msg("tx submitted")
	return OK(txID)
}

func (s *Submitter) unexpected(log zerolog.Logger, err error) Result {
	log.Error().Msgf("sendTransaction error: %s", err.Error())
	return Failure(CodeUnexpected, errorDetail(err))
}
