package grpc

import (
	"context"
	"encoding/json"
	"errors"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
)

func toStatus(err error) error {
	switch {
	case errors.Is(err, rf.ErrCardNotFound), errors.Is(err, rf.ErrCodeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, rf.ErrNotAnAlarm), errors.Is(err, rf.ErrMalformedEvent), errors.Is(err, rf.ErrInvalidCard):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, rf.ErrCardExists), errors.Is(err, rf.ErrCodeAssigned):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

// toStruct reshapes any JSON encodable value into a structpb.Struct.
func toStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func validateField(req *structpb.Struct, name string) (string, error) {
	value := req.GetFields()[name].GetStringValue()
	if issues := z.String().Trim().Min(1).Required().Validate(&value); len(issues) > 0 {
		return "", status.Errorf(codes.InvalidArgument, "validation error: %s: %v", name, issues)
	}
	return value, nil
}

func (s *RFServer) ResolveCode(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	code, err := validateField(req, "code")
	if err != nil {
		return nil, err
	}

	availability, err := s.RF.Availability.Resolve(ctx, code)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(availability)
}

func (s *RFServer) ListCards(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	cards, err := s.RF.Cards.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(map[string]any{"cards": cards})
}

func (s *RFServer) SetArmed(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	shortname, err := validateField(req, "shortname")
	if err != nil {
		return nil, err
	}

	card, err := s.RF.Lifecycle.SetArmed(ctx, shortname, req.GetFields()["armed"].GetBoolValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(card)
}

// IngestCode feeds one event through the same pipeline as the radio, for
// gateways that push over gRPC rather than through a local transport.
func (s *RFServer) IngestCode(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	raw, err := json.Marshal(req.AsMap())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.RF.Ingestor.Ingest(ctx, raw); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
