package router

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"

	apicontext "github.com/dtroode/backend-template/internal/api/context"
	"github.com/dtroode/backend-template/internal/mocks"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/service"
	"github.com/dtroode/backend-template/internal/testutil"
	"github.com/dtroode/backend-template/internal/token"
)

func startServer(t *testing.T, store model.UserStore) (*grpc.ClientConn, *service.TokenService) {
	t.Helper()

	codec, err := token.NewJWT("grpc-router-secret", "HS256")
	require.NoError(t, err)
	log := testutil.MakeNoopLogger()
	tokens := service.NewTokenService(codec, time.Hour, log)

	r := New(service.NewIdentity(store, tokens, nil, log), health.NewServer(), apicontext.NewManager(), log)
	s := r.Register()
	require.NotNil(t, s)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(ln) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient(ln.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, tokens
}

func listServices(ctx context.Context, conn *grpc.ClientConn) ([]string, error) {
	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(ctx, grpc.WaitForReady(true))
	if err != nil {
		return nil, err
	}
	if err := stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{ListServices: "*"},
	}); err != nil {
		return nil, err
	}
	resp, err := stream.Recv()
	if err != nil {
		return nil, err
	}
	_ = stream.CloseSend()

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	return names, nil
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	conn, _ := startServer(t, mocks.NewUserStore(t))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestRouter_ReflectionRequiresSuperuser(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		user     *model.User
		withAuth bool
		wantCode codes.Code
	}{
		{name: "anonymous", wantCode: codes.Unauthenticated},
		{name: "regular user", withAuth: true, user: &model.User{ID: id, IsActive: true}, wantCode: codes.FailedPrecondition},
		{name: "superuser", withAuth: true, user: &model.User{ID: id, IsActive: true, IsSuperuser: true}, wantCode: codes.OK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewUserStore(t)
			if tt.user != nil {
				store.On("GetByID", mock.Anything, id).Return(*tt.user, nil)
			}
			conn, tokens := startServer(t, store)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if tt.withAuth {
				access, err := tokens.Issue(ctx, id)
				require.NoError(t, err)
				ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+access.AccessToken)
			}

			names, err := listServices(ctx, conn)
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantCode == codes.OK {
				assert.Contains(t, names, healthpb.Health_ServiceDesc.ServiceName)
			}
		})
	}
}
