package adminController

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// orderWithUser attaches a populated customer summary to each listed order.
type orderWithUser struct {
	models.Order
	User *models.UserSummary `json:"user,omitempty"`
}

// GET /api/admin/orders
// Paginated listing, newest first, with an optional status filter. Each item
// carries the placing customer's summary when the account still exists.
func ListOrders(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, skip := common.Pagination(c)

		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		total, err := s.Orders.CountDocuments(c.Request.Context(), filter)
		if err != nil {
			common.InternalError(c, err)
			return
		}

		cur, err := s.Orders.Find(c.Request.Context(), filter, options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(int64(skip)).
			SetLimit(int64(limit)))
		if err != nil {
			common.InternalError(c, err)
			return
		}
		defer cur.Close(c.Request.Context())

		var orders []models.Order
		if err := cur.All(c.Request.Context(), &orders); err != nil {
			common.InternalError(c, err)
			return
		}

		users, err := usersForOrders(c, s, orders)
		if err != nil {
			common.InternalError(c, err)
			return
		}

		items := make([]orderWithUser, 0, len(orders))
		for _, order := range orders {
			item := orderWithUser{Order: order}
			if order.UserID != nil {
				if summary, ok := users[*order.UserID]; ok {
					item.User = summary
				}
			}
			items = append(items, item)
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": total,
			"page":  page,
			"limit": limit,
		})
	}
}

// usersForOrders fetches the summaries of every distinct user referenced by
// the page of orders in a single query.
func usersForOrders(c *gin.Context, s *store.Store, orders []models.Order) (map[primitive.ObjectID]*models.UserSummary, error) {
	ids := make([]primitive.ObjectID, 0, len(orders))
	seen := make(map[primitive.ObjectID]bool)
	for _, order := range orders {
		if order.UserID != nil && !seen[*order.UserID] {
			seen[*order.UserID] = true
			ids = append(ids, *order.UserID)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cur, err := s.Users.Find(c.Request.Context(), bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{
			"name": 1, "email": 1, "cpf": 1, "whatsapp": 1,
		}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(c.Request.Context())

	var summaries []models.UserSummary
	if err := cur.All(c.Request.Context(), &summaries); err != nil {
		return nil, err
	}

	users := make(map[primitive.ObjectID]*models.UserSummary, len(summaries))
	for i := range summaries {
		users[summaries[i].ID] = &summaries[i]
	}
	return users, nil
}

// PUT /api/admin/orders/:id
// Status transition. Monetary and item fields are never touched; paid sets
// paidAt, any other target clears it. Transition order is unrestricted.
func UpdateOrderStatus(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pedido não encontrado"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status inválido"})
			return
		}

		var paidAt *time.Time
		if status == models.OrderStatusPaid {
			now := time.Now()
			paidAt = &now
		}

		var order models.Order
		err = s.Orders.FindOneAndUpdate(
			c.Request.Context(),
			bson.M{"_id": id},
			bson.M{"$set": bson.M{
				"status":    status,
				"paidAt":    paidAt,
				"updatedAt": time.Now(),
			}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&order)
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pedido não encontrado"})
			return
		}
		if err != nil {
			common.InternalError(c, err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// DELETE /api/admin/orders/:id
func DeleteOrder(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pedido não encontrado"})
			return
		}

		res := s.Orders.FindOneAndDelete(c.Request.Context(), bson.M{"_id": id})
		if errors.Is(res.Err(), mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pedido não encontrado"})
			return
		}
		if res.Err() != nil {
			common.InternalError(c, res.Err())
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Pedido apagado com sucesso"})
	}
}
