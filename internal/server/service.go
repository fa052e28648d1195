package server

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/xtding233/name-reel/internal/picker"
)

const (
	defaultTrials = 10000
	maxTrials     = 1000000
)

// Service exposes one Picker over RPC. The picker does not lock, so every
// call that touches it runs under mu; a second Spin waits for the first.
type Service struct {
	mu     sync.Mutex
	picker *picker.Picker
	reel   picker.Reel
	rng    picker.RandomSource
	log    zerolog.Logger
}

// NewService serves p, reading winners back from r (the reel p renders into).
func NewService(p *picker.Picker, r picker.Reel, rng picker.RandomSource, logger zerolog.Logger) *Service {
	if rng == nil {
		rng = picker.DefaultRNG()
	}
	return &Service{picker: p, reel: r, rng: rng, log: logger}
}

// ReplaceNames swaps the pool outside of RPC, e.g. after a names file changed.
func (s *Service) ReplaceNames(names []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker.SetPool(names)
}

func (s *Service) SetNames(_ context.Context, in *structpb.ListValue) (*emptypb.Empty, error) {
	names := make([]string, 0, len(in.GetValues()))
	for i, v := range in.GetValues() {
		sv, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "names[%d] is not a string", i)
		}
		names = append(names, sv.StringValue)
	}
	s.ReplaceNames(names)
	return &emptypb.Empty{}, nil
}

func (s *Service) GetNames(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	s.mu.Lock()
	pool := s.picker.Pool()
	s.mu.Unlock()
	return structpb.NewList(toAny(pool))
}

func (s *Service) SetRemoveWinner(_ context.Context, in *wrapperspb.BoolValue) (*emptypb.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.picker.SetRemoveWinner(in.GetValue())
	return &emptypb.Empty{}, nil
}

func (s *Service) GetRemoveWinner(_ context.Context, _ *emptypb.Empty) (*wrapperspb.BoolValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return wrapperspb.Bool(s.picker.RemoveWinner()), nil
}

// Spin blocks until the reel settles. Expected failures come back as ok=false
// with a reason; anything else is an Internal error.
func (s *Service) Spin(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.picker.TrySpin()
	switch {
	case errors.Is(err, picker.ErrEmptyPool):
		return structpb.NewStruct(map[string]any{"ok": false, "reason": "empty_pool"})
	case errors.Is(err, picker.ErrMissingReel):
		return structpb.NewStruct(map[string]any{"ok": false, "reason": "missing_reel"})
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	winner := ""
	if items := s.reel.Items(); len(items) == 1 {
		winner = items[0]
	}
	return structpb.NewStruct(map[string]any{
		"ok":        true,
		"winner":    winner,
		"remaining": toAny(s.picker.Pool()),
	})
}

// Simulate reports how evenly the current pool would be drawn.
func (s *Service) Simulate(_ context.Context, in *wrapperspb.Int32Value) (*structpb.Struct, error) {
	trials := int(in.GetValue())
	if trials == 0 {
		trials = defaultTrials
	}
	if trials < 0 || trials > maxTrials {
		return nil, status.Errorf(codes.InvalidArgument, "trials must be in 1..%d", maxTrials)
	}

	s.mu.Lock()
	pool := s.picker.Pool()
	s.mu.Unlock()

	f, err := picker.RunFairness(pool, trials, s.rng)
	if errors.Is(err, picker.ErrNoTrials) {
		return nil, status.Error(codes.FailedPrecondition, "name pool is empty")
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	wins := make([]any, len(pool))
	for i, name := range pool {
		wins[i] = map[string]any{"name": name, "wins": f.Wins[i]}
	}
	s.log.Debug().Int("trials", trials).Float64("chi_square", f.ChiSquare).Msg("fairness run")
	return structpb.NewStruct(map[string]any{
		"trials":     f.Trials,
		"chi_square": f.ChiSquare,
		"wins":       wins,
		"mean":       f.WinStats.Mean,
		"stddev":     f.WinStats.StdDev,
	})
}

func (s *Service) Status(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"phase":     s.picker.Phase().String(),
		"reel_live": s.reel != nil && s.reel.Attached(),
	})
}

func toAny(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
