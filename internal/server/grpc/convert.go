package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/storekeeper/internal/proto"
	"github.com/dmitrijs2005/storekeeper/internal/server/assets"
	"github.com/dmitrijs2005/storekeeper/internal/server/models"
	"github.com/dmitrijs2005/storekeeper/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

// optionalID maps the wire zero value to "not set".
func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func valueOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func toUpload(img *pb.ImageUpload) *assets.Upload {
	if len(img.GetContent()) == 0 {
		return nil
	}
	return &assets.Upload{FileName: img.GetFileName(), Content: img.GetContent()}
}

func productInput(in *pb.ProductInput) services.ProductInput {
	return services.ProductInput{
		Name:        in.GetName(),
		Description: in.GetDescription(),
		Price:       in.GetPrice(),
		Stock:       int(in.GetStock()),
		CategoryID:  optionalID(in.GetCategoryId()),
		SupplierID:  optionalID(in.GetSupplierId()),
	}
}

func productToPB(p *models.Product) *pb.Product {
	if p == nil {
		return nil
	}
	return &pb.Product{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       int32(p.Stock),
		CategoryId:  valueOrZero(p.CategoryID),
		SupplierId:  valueOrZero(p.SupplierID),
		Images:      p.Images,
		Category:    categoryToPB(p.Category),
		Supplier:    supplierToPB(p.Supplier),
		CreatedAt:   toTimestamp(p.CreatedAt),
		UpdatedAt:   toTimestamp(p.UpdatedAt),
	}
}

func categoryToPB(c *models.Category) *pb.Category {
	if c == nil {
		return nil
	}
	return &pb.Category{Id: c.ID, Name: c.Name, Description: c.Description}
}

func categoryFromPB(c *pb.Category) *models.Category {
	return &models.Category{ID: c.GetId(), Name: c.GetName(), Description: c.GetDescription()}
}

func supplierToPB(s *models.Supplier) *pb.Supplier {
	if s == nil {
		return nil
	}
	return &pb.Supplier{
		Id:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		Phone:        s.Phone,
		Address:      s.Address,
	}
}

func supplierFromPB(s *pb.Supplier) *models.Supplier {
	return &models.Supplier{
		ID:           s.GetId(),
		Name:         s.GetName(),
		ContactEmail: s.GetContactEmail(),
		Phone:        s.GetPhone(),
		Address:      s.GetAddress(),
	}
}

func ratingInput(in *pb.RatingInput) services.RatingInput {
	return services.RatingInput{
		ProductID: in.GetProductId(),
		Score:     int(in.GetScore()),
		Comment:   in.GetComment(),
	}
}

func ratingToPB(r *models.Rating) *pb.Rating {
	if r == nil {
		return nil
	}
	return &pb.Rating{
		Id:        r.ID,
		ProductId: r.ProductID,
		UserId:    r.UserID,
		Score:     int32(r.Score),
		Comment:   r.Comment,
		CreatedAt: toTimestamp(r.CreatedAt),
	}
}

func orderItemsInput(items []*pb.OrderItemInput) []services.OrderItemInput {
	out := make([]services.OrderItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, services.OrderItemInput{ProductID: it.GetProductId(), Quantity: int(it.GetQuantity())})
	}
	return out
}

func orderToPB(o *models.Order) *pb.Order {
	if o == nil {
		return nil
	}
	items := make([]*pb.OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &pb.OrderItem{
			ProductId: it.ProductID,
			Quantity:  int32(it.Quantity),
			UnitPrice: it.UnitPrice,
		})
	}
	return &pb.Order{
		Id:        o.ID,
		UserId:    o.UserID,
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: toTimestamp(o.CreatedAt),
		UpdatedAt: toTimestamp(o.UpdatedAt),
	}
}

// mapSlice converts a list with one of the *ToPB helpers.
func mapSlice[T, P any](in []*T, f func(*T) *P) []*P {
	out := make([]*P, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
