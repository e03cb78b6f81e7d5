package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/rf-code-hub/pkg/common"
	"liyu1981.xyz/rf-code-hub/pkg/db"
	"liyu1981.xyz/rf-code-hub/pkg/models"
	"liyu1981.xyz/rf-code-hub/pkg/rf"
	"liyu1981.xyz/rf-code-hub/pkg/rf/mocks"
	_ "liyu1981.xyz/rf-code-hub/pkg/testing"
)

const bufSize = 1024 * 1024

var limitedMethods = []string{MethodIngestCode, MethodSetArmed}

func startTestServer(t *testing.T, rfCore *rf.RF, limiterStore *rf.RateLimiterStore) *RFHubClient {
	listener := bufconn.Listen(bufSize)

	rfServer := RFServer{RF: rfCore, RateLimiterStore: limiterStore}
	server := grpc.NewServer(grpc.UnaryInterceptor(rfServer.CreateRateLimitInterceptor(limitedMethods)))
	RegisterRFHubServer(server, &rfServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewRFHubClient(conn)
}

func newRF(t *testing.T, opts rf.ServiceOpts) *rf.RF {
	dbInstance, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)

	rfCore := &rf.RF{Db: *dbInstance, AssetsDir: t.TempDir()}
	rfCore.WithServices(opts).WithDefaultServices()
	return rfCore
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestIngestAndResolve(t *testing.T) {
	common.SetTestLoggerNop()
	rfCore := newRF(t, rf.ServiceOpts{})
	client := startTestServer(t, rfCore, nil)
	ctx := context.Background()

	_, err := client.IngestCode(ctx, mustStruct(t, map[string]any{"code": 5592405, "status": "received"}))
	require.NoError(t, err)

	code, err := rfCore.Codes.Get(ctx, "5592405")
	require.NoError(t, err)
	assert.Equal(t, "5592405", code.Code)

	resp, err := client.ResolveCode(ctx, mustStruct(t, map[string]any{"code": "5592405"}))
	require.NoError(t, err)
	assert.True(t, resp.GetFields()["isAvailable"].GetBoolValue())

	// never observed
	resp, err = client.ResolveCode(ctx, mustStruct(t, map[string]any{"code": "404"}))
	require.NoError(t, err)
	assert.True(t, resp.GetFields()["ignored"].GetBoolValue())
}

func TestIngestCode_Malformed(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, newRF(t, rf.ServiceOpts{}), nil)

	_, err := client.IngestCode(context.Background(), mustStruct(t, map[string]any{"status": "received"}))
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestResolveCode_Validation(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t, newRF(t, rf.ServiceOpts{}), nil)

	_, err := client.ResolveCode(context.Background(), mustStruct(t, map[string]any{"code": "  "}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListCardsAndSetArmed(t *testing.T) {
	common.SetTestLoggerNop()
	rfCore := newRF(t, rf.ServiceOpts{})
	client := startTestServer(t, rfCore, nil)
	ctx := context.Background()

	_, err := rfCore.Cards.SeedDefaults(ctx)
	require.NoError(t, err)

	resp, err := client.ListCards(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	cards := resp.GetFields()["cards"].GetListValue().GetValues()
	assert.Len(t, cards, len(rf.DefaultCards))

	var alarm string
	for _, card := range rf.DefaultCards {
		if card.Type == models.CardTypeAlarm {
			alarm = card.Shortname
		}
	}
	require.NotEmpty(t, alarm)

	armed, err := client.SetArmed(ctx, mustStruct(t, map[string]any{"shortname": alarm, "armed": true}))
	require.NoError(t, err)
	assert.True(t, armed.GetFields()["armed"].GetBoolValue())

	_, err = client.SetArmed(ctx, mustStruct(t, map[string]any{"shortname": "ghost", "armed": true}))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestRateLimitInterceptor_IngestCode(t *testing.T) {
	common.SetTestLoggerNop()

	limiterStore := rf.NewRateLimiterStore(0.001, 2)
	client := startTestServer(t, newRF(t, rf.ServiceOpts{}), limiterStore)
	ctx := context.Background()

	req := mustStruct(t, map[string]any{"code": "1361", "status": "received"})
	for i := range 2 {
		_, err := client.IngestCode(ctx, req)
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	_, err := client.IngestCode(ctx, req)
	require.Error(t, err, "expected third request to be rate limited")
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, codes.ResourceExhausted, st.Code())

	// unlisted methods are not throttled
	for range 3 {
		_, err := client.ListCards(ctx, &emptypb.Empty{})
		require.NoError(t, err)
	}

	// raising the bucket lets calls through again
	limiterStore.SetLimiter(MethodIngestCode, 10, 10)
	_, err = client.IngestCode(ctx, req)
	require.NoError(t, err)
}

func TestListCards_StoreError(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCards := mocks.NewMockICardStore(ctrl)
	mockCards.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("just causing error")).
		Times(1)

	client := startTestServer(t, newRF(t, rf.ServiceOpts{Cards: mockCards}), nil)

	_, err := client.ListCards(context.Background(), &emptypb.Empty{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestServiceDesc_HandlersDecodeAndIntercept(t *testing.T) {
	common.SetTestLoggerNop()
	rfCore := newRF(t, rf.ServiceOpts{})
	srv := &RFServer{RF: rfCore}
	ctx := context.Background()

	handlers := map[string]func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error){}
	for _, m := range RFHubServiceDesc.Methods {
		handlers[m.MethodName] = m.Handler
	}
	require.Len(t, handlers, 4)

	req := mustStruct(t, map[string]any{"code": "404"})
	dec := func(v any) error {
		proto.Merge(v.(*structpb.Struct), req)
		return nil
	}

	// no interceptor: straight to the server
	out, err := handlers["ResolveCode"](srv, ctx, dec, nil)
	require.NoError(t, err)
	assert.True(t, out.(*structpb.Struct).GetFields()["ignored"].GetBoolValue())

	// interceptor sees the full method name
	var seen string
	interceptor := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return handler(ctx, req)
	}
	_, err = handlers["ResolveCode"](srv, ctx, dec, interceptor)
	require.NoError(t, err)
	assert.Equal(t, MethodResolveCode, seen)

	// decode failures never reach the server
	_, err = handlers["ResolveCode"](srv, ctx, func(any) error { return errors.New("bad frame") }, nil)
	assert.EqualError(t, err, "bad frame")
}
