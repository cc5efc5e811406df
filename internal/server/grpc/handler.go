package grpc

import (
	"context"

	"github.com/dmitrijs2005/storekeeper/internal/common"
	pb "github.com/dmitrijs2005/storekeeper/internal/proto"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ pb.StoreServer = (*GRPCServer)(nil)

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "ok"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.CredentialsRequest) (*pb.RegisterResponse, error) {
	u, err := s.svc.Users.Register(ctx, req.GetUsername(), req.GetPassword(), nil)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RegisterResponse{UserId: u.ID, Username: u.UserName, Roles: u.Roles}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.CredentialsRequest) (*pb.TokenResponse, error) {
	p, err := s.svc.Users.Login(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{
		AccessToken:        p.AccessToken,
		RefreshToken:       p.RefreshToken,
		RefreshTokenExpiry: toTimestamp(p.RefreshTokenExpiry),
	}, nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	p, err := s.svc.Users.Refresh(ctx, req.GetRefreshToken(), fromTimestamp(req.GetRefreshTokenExpiry()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{
		AccessToken:        p.AccessToken,
		RefreshToken:       p.RefreshToken,
		RefreshTokenExpiry: toTimestamp(p.RefreshTokenExpiry),
	}, nil
}

func (s *GRPCServer) GetProduct(ctx context.Context, req *pb.IDRequest) (*pb.ProductResponse, error) {
	p, err := s.svc.Products.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProductResponse{Product: productToPB(p)}, nil
}

func (s *GRPCServer) ListProducts(ctx context.Context, _ *pb.Empty) (*pb.ProductListResponse, error) {
	items, err := s.svc.Products.GetAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProductListResponse{Products: mapSlice(items, productToPB)}, nil
}

func (s *GRPCServer) GetProductImageURL(ctx context.Context, req *pb.IDRequest) (*pb.ImageURLResponse, error) {
	url, err := s.svc.Products.ImageURL(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ImageURLResponse{Url: url}, nil
}

func (s *GRPCServer) CreateProduct(ctx context.Context, req *pb.ProductRequest) (*pb.ProductResponse, error) {
	p, err := s.svc.Products.Create(ctx, productInput(req.GetProduct()), toUpload(req.GetImage()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProductResponse{Product: productToPB(p)}, nil
}

func (s *GRPCServer) UpdateProduct(ctx context.Context, req *pb.ProductRequest) (*pb.ProductResponse, error) {
	p, err := s.svc.Products.Update(ctx, req.GetId(), productInput(req.GetProduct()), toUpload(req.GetImage()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ProductResponse{Product: productToPB(p)}, nil
}

func (s *GRPCServer) DeleteProduct(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.svc.Products.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetCategory(ctx context.Context, req *pb.IDRequest) (*pb.CategoryResponse, error) {
	c, err := s.svc.Categories.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CategoryResponse{Category: categoryToPB(c)}, nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, _ *pb.Empty) (*pb.CategoryListResponse, error) {
	items, err := s.svc.Categories.GetAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CategoryListResponse{Categories: mapSlice(items, categoryToPB)}, nil
}

func (s *GRPCServer) CreateCategory(ctx context.Context, req *pb.CategoryRequest) (*pb.CategoryResponse, error) {
	c, err := s.svc.Categories.Create(ctx, categoryFromPB(req.GetCategory()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CategoryResponse{Category: categoryToPB(c)}, nil
}

func (s *GRPCServer) UpdateCategory(ctx context.Context, req *pb.CategoryRequest) (*pb.CategoryResponse, error) {
	c, err := s.svc.Categories.Update(ctx, req.GetId(), categoryFromPB(req.GetCategory()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CategoryResponse{Category: categoryToPB(c)}, nil
}

func (s *GRPCServer) DeleteCategory(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.svc.Categories.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetSupplier(ctx context.Context, req *pb.IDRequest) (*pb.SupplierResponse, error) {
	v, err := s.svc.Suppliers.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SupplierResponse{Supplier: supplierToPB(v)}, nil
}

func (s *GRPCServer) ListSuppliers(ctx context.Context, _ *pb.Empty) (*pb.SupplierListResponse, error) {
	items, err := s.svc.Suppliers.GetAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SupplierListResponse{Suppliers: mapSlice(items, supplierToPB)}, nil
}

func (s *GRPCServer) CreateSupplier(ctx context.Context, req *pb.SupplierRequest) (*pb.SupplierResponse, error) {
	v, err := s.svc.Suppliers.Create(ctx, supplierFromPB(req.GetSupplier()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SupplierResponse{Supplier: supplierToPB(v)}, nil
}

func (s *GRPCServer) UpdateSupplier(ctx context.Context, req *pb.SupplierRequest) (*pb.SupplierResponse, error) {
	v, err := s.svc.Suppliers.Update(ctx, req.GetId(), supplierFromPB(req.GetSupplier()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SupplierResponse{Supplier: supplierToPB(v)}, nil
}

func (s *GRPCServer) DeleteSupplier(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.svc.Suppliers.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) GetRating(ctx context.Context, req *pb.KeyRequest) (*pb.RatingResponse, error) {
	r, err := s.svc.Ratings.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RatingResponse{Rating: ratingToPB(r)}, nil
}

func (s *GRPCServer) ListRatings(ctx context.Context, req *pb.ListRatingsRequest) (*pb.RatingListResponse, error) {
	var (
		items []*models.Rating
		err   error
	)
	if req.GetProductId() != 0 {
		items, err = s.svc.Ratings.ListByProduct(ctx, req.GetProductId())
	} else {
		items, err = s.svc.Ratings.GetAll(ctx)
	}
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RatingListResponse{Ratings: mapSlice(items, ratingToPB)}, nil
}

func (s *GRPCServer) CreateRating(ctx context.Context, req *pb.RatingRequest) (*pb.RatingResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	r, err := s.svc.Ratings.Create(ctx, userID, ratingInput(req.GetRating()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RatingResponse{Rating: ratingToPB(r)}, nil
}

func (s *GRPCServer) UpdateRating(ctx context.Context, req *pb.RatingRequest) (*pb.RatingResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	r, err := s.svc.Ratings.Update(ctx, req.GetId(), userID, ratingInput(req.GetRating()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RatingResponse{Rating: ratingToPB(r)}, nil
}

// DeleteRating lets the author or an admin remove a rating.
func (s *GRPCServer) DeleteRating(ctx context.Context, req *pb.KeyRequest) (*pb.Empty, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	r, err := s.svc.Ratings.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if r.UserID != userID && !isAdmin(ctx) {
		return nil, s.toStatus(ctx, common.ErrorForbidden)
	}
	if err := s.svc.Ratings.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// GetOrder returns the order to its owner or an admin. Other callers get
// NotFound so foreign order ids stay hidden.
func (s *GRPCServer) GetOrder(ctx context.Context, req *pb.KeyRequest) (*pb.OrderResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	o, err := s.svc.Orders.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	if o.UserID != userID && !isAdmin(ctx) {
		return nil, s.toStatus(ctx, common.ErrorNotFound)
	}
	return &pb.OrderResponse{Order: orderToPB(o)}, nil
}

func (s *GRPCServer) ListOrders(ctx context.Context, _ *pb.Empty) (*pb.OrderListResponse, error) {
	items, err := s.svc.Orders.GetAll(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderListResponse{Orders: mapSlice(items, orderToPB)}, nil
}

func (s *GRPCServer) ListMyOrders(ctx context.Context, _ *pb.Empty) (*pb.OrderListResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	items, err := s.svc.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderListResponse{Orders: mapSlice(items, orderToPB)}, nil
}

func (s *GRPCServer) CreateOrder(ctx context.Context, req *pb.CreateOrderRequest) (*pb.OrderResponse, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	o, err := s.svc.Orders.Create(ctx, userID, orderItemsInput(req.GetItems()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderResponse{Order: orderToPB(o)}, nil
}

func (s *GRPCServer) UpdateOrderStatus(ctx context.Context, req *pb.OrderStatusRequest) (*pb.OrderResponse, error) {
	o, err := s.svc.Orders.UpdateStatus(ctx, req.GetId(), req.GetStatus())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.OrderResponse{Order: orderToPB(o)}, nil
}

func (s *GRPCServer) DeleteOrder(ctx context.Context, req *pb.KeyRequest) (*pb.Empty, error) {
	if err := s.svc.Orders.Delete(ctx, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}
