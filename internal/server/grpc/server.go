package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/storekeeper/internal/logging"
	pb "github.com/dmitrijs2005/storekeeper/internal/proto"
	"github.com/dmitrijs2005/storekeeper/internal/server/auth"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/timex"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Services bundles the business services exposed over gRPC.
type Services struct {
	Users      UserService
	Products   ProductService
	Categories CatalogService[models.Category]
	Suppliers  CatalogService[models.Supplier]
	Ratings    RatingService
	Orders     OrderService
}

type GRPCServer struct {
	pb.UnimplementedStoreServer
	address string
	svc     Services
	issuer  *auth.Issuer
	clock   timex.Clock
	limiter *peerLimiter
	logger  logging.Logger
}

// NewGRPCServer builds the store server. loginPerMinute bounds Register,
// Login and Refresh calls per client host; zero disables the limit.
func NewGRPCServer(address string, l logging.Logger, svc Services, issuer *auth.Issuer, clock timex.Clock, loginPerMinute int) *GRPCServer {
	return &GRPCServer{
		address: address,
		svc:     svc,
		issuer:  issuer,
		clock:   clock,
		limiter: newPeerLimiter(loginPerMinute, clock.Now,
			pb.Store_Register_FullMethodName, pb.Store_Login_FullMethodName, pb.Store_Refresh_FullMethodName),
		logger: l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.loggingInterceptor,
		s.limiter.interceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterStoreServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.Store_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
