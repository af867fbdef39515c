package productcontroller

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adamswinfred36-debug/Backend-MLST/controllers/common"
	"github.com/adamswinfred36-debug/Backend-MLST/models"
	"github.com/adamswinfred36-debug/Backend-MLST/store"
)

// GET /api/admin/products/export-excel
// Dumps the whole catalog (archived products included) as an xlsx download.
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cur, err := s.Products.Find(c.Request.Context(), bson.M{},
			options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
		if err != nil {
			common.InternalError(c, err)
			return
		}
		defer cur.Close(c.Request.Context())

		var products []models.Product
		if err := cur.All(c.Request.Context(), &products); err != nil {
			common.InternalError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			common.InternalError(c, err)
			return
		}

		headers := []string{
			"ID", "Title", "Slug", "Category", "Brand",
			"PriceOriginal", "PriceCurrent", "Discount",
			"StockQuantity", "Available", "RatingAverage", "RatingCount",
			"Active", "Images", "CreatedAt", "UpdatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID.Hex())
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Price.Original)
			row.AddCell().SetValue(p.Price.Current)
			row.AddCell().SetValue(p.Price.Discount)
			row.AddCell().SetValue(p.Stock.Quantity)
			row.AddCell().SetValue(p.Stock.Available)
			row.AddCell().SetValue(p.Rating.Average)
			row.AddCell().SetValue(p.Rating.Count)
			row.AddCell().SetValue(p.Active)
			row.AddCell().SetValue(strings.Join(p.Images, ","))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(p.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			common.InternalError(c, err)
			return
		}
	}
}
