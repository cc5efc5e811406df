package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	pb "github.com/dmitrijs2005/storekeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type access int

const (
	public access = iota
	authenticated
	adminOnly
)

// methodAccess lists the methods that need a caller. Anything absent,
// including the health service, is public.
var methodAccess = map[string]access{
	pb.Store_CreateProduct_FullMethodName:  adminOnly,
	pb.Store_UpdateProduct_FullMethodName:  adminOnly,
	pb.Store_DeleteProduct_FullMethodName:  adminOnly,
	pb.Store_CreateCategory_FullMethodName: adminOnly,
	pb.Store_UpdateCategory_FullMethodName: adminOnly,
	pb.Store_DeleteCategory_FullMethodName: adminOnly,
	pb.Store_CreateSupplier_FullMethodName: adminOnly,
	pb.Store_UpdateSupplier_FullMethodName: adminOnly,
	pb.Store_DeleteSupplier_FullMethodName: adminOnly,

	pb.Store_CreateRating_FullMethodName: authenticated,
	pb.Store_UpdateRating_FullMethodName: authenticated,
	pb.Store_DeleteRating_FullMethodName: authenticated,

	pb.Store_GetOrder_FullMethodName:          authenticated,
	pb.Store_ListMyOrders_FullMethodName:      authenticated,
	pb.Store_CreateOrder_FullMethodName:       authenticated,
	pb.Store_ListOrders_FullMethodName:        adminOnly,
	pb.Store_UpdateOrderStatus_FullMethodName: adminOnly,
	pb.Store_DeleteOrder_FullMethodName:       adminOnly,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	required, ok := methodAccess[info.FullMethod]
	if !ok || required == public {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := s.issuer.ParseAccessToken(accessToken, s.clock.Now())
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	if required == adminOnly && !claims.HasRole(common.RoleAdmin) {
		return nil, status.Error(codes.PermissionDenied, "admin role required")
	}

	return handler(withClaims(ctx, claims), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
