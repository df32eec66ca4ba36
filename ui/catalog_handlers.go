package ui

import (
	"bytes"
	"net/http"

	"reeladmin/adapters/export"
	"reeladmin/models"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

func (s *Server) setupCatalogRoutes(api *gin.RouterGroup) {
	fish := api.Group("/fish")
	{
		fish.GET("", s.handleListFish)
		fish.POST("", s.handleCreateFish)
		fish.GET("/:id", s.handleGetFish)
		fish.PUT("/:id", s.handleUpdateFish)
		fish.DELETE("/:id", s.handleDeleteFish)
		fish.GET("/template", s.handleFishTemplate)
		fish.POST("/import", s.handleImportFish)
	}

	rods := api.Group("/rods")
	{
		rods.GET("", s.handleListRods)
		rods.POST("", s.handleCreateRod)
		rods.GET("/:id", s.handleGetRod)
		rods.PUT("/:id", s.handleUpdateRod)
		rods.DELETE("/:id", s.handleDeleteRod)
		rods.GET("/template", s.handleRodTemplate)
		rods.POST("/import", s.handleImportRods)
	}

	baits := api.Group("/baits")
	{
		baits.GET("", s.handleListBaits)
		baits.POST("", s.handleCreateBait)
		baits.PUT("/:id", s.handleUpdateBait)
		baits.DELETE("/:id", s.handleDeleteBait)
	}

	accessories := api.Group("/accessories")
	{
		accessories.GET("", s.handleListAccessories)
		accessories.POST("", s.handleCreateAccessory)
		accessories.PUT("/:id", s.handleUpdateAccessory)
		accessories.DELETE("/:id", s.handleDeleteAccessory)
		accessories.GET("/template", s.handleAccessoryTemplate)
		accessories.POST("/import", s.handleImportAccessories)
	}

	items := api.Group("/items")
	{
		items.GET("", s.handleListItems)
		items.POST("", s.handleCreateItem)
		items.PUT("/:id", s.handleUpdateItem)
		items.DELETE("/:id", s.handleDeleteItem)
	}

	api.GET("/catalog/export", s.handleExportCatalog)
}

// Fish

func (s *Server) handleListFish(c *gin.Context) {
	fish, err := s.templates.ListFish(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"fish": fish})
}

func (s *Server) handleGetFish(c *gin.Context) {
	fishID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	f, err := s.templates.GetFish(c.Request.Context(), fishID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"fish": f})
}

func (s *Server) handleCreateFish(c *gin.Context) {
	var f models.Fish
	if err := c.ShouldBindJSON(&f); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.templates.CreateFish(c.Request.Context(), &f); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"fish": f, "message": "fish created"})
}

func (s *Server) handleUpdateFish(c *gin.Context) {
	fishID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var f models.Fish
	if err := c.ShouldBindJSON(&f); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	f.FishID = fishID
	if err := s.templates.UpdateFish(c.Request.Context(), &f); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"fish": f, "message": "fish updated"})
}

func (s *Server) handleDeleteFish(c *gin.Context) {
	fishID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.templates.DeleteFish(c.Request.Context(), fishID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "fish deleted")
}

func (s *Server) handleFishTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteFishTemplate(&buf); err != nil {
		respondAppError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="fish_template.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleImportFish(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	fish, rowErrs, err := export.ParseFishCSV(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := s.templates.ImportFish(c.Request.Context(), fish)
	for _, re := range rowErrs {
		result.Skipped++
		result.Errors = append(result.Errors, re.Error())
	}
	respondOK(c, gin.H{"result": result})
}

// Rods

func (s *Server) handleListRods(c *gin.Context) {
	rods, err := s.templates.ListRods(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"rods": rods})
}

func (s *Server) handleGetRod(c *gin.Context) {
	rodID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	rod, err := s.templates.GetRod(c.Request.Context(), rodID)
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"rod": rod})
}

func (s *Server) handleCreateRod(c *gin.Context) {
	var rod models.Rod
	if err := c.ShouldBindJSON(&rod); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.templates.CreateRod(c.Request.Context(), &rod); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"rod": rod, "message": "rod created"})
}

func (s *Server) handleUpdateRod(c *gin.Context) {
	rodID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var rod models.Rod
	if err := c.ShouldBindJSON(&rod); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	rod.RodID = rodID
	if err := s.templates.UpdateRod(c.Request.Context(), &rod); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"rod": rod, "message": "rod updated"})
}

func (s *Server) handleDeleteRod(c *gin.Context) {
	rodID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.templates.DeleteRod(c.Request.Context(), rodID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "rod deleted")
}

func (s *Server) handleRodTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteRodTemplate(&buf); err != nil {
		respondAppError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="rod_template.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleImportRods(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	rods, rowErrs, err := export.ParseRodCSV(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := s.templates.ImportRods(c.Request.Context(), rods)
	for _, re := range rowErrs {
		result.Skipped++
		result.Errors = append(result.Errors, re.Error())
	}
	respondOK(c, gin.H{"result": result})
}

// Baits

func (s *Server) handleListBaits(c *gin.Context) {
	baits, err := s.templates.ListBaits(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"baits": baits})
}

func (s *Server) handleCreateBait(c *gin.Context) {
	var bait models.Bait
	if err := c.ShouldBindJSON(&bait); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.templates.CreateBait(c.Request.Context(), &bait); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"bait": bait, "message": "bait created"})
}

func (s *Server) handleUpdateBait(c *gin.Context) {
	baitID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var bait models.Bait
	if err := c.ShouldBindJSON(&bait); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	bait.BaitID = baitID
	if err := s.templates.UpdateBait(c.Request.Context(), &bait); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"bait": bait, "message": "bait updated"})
}

func (s *Server) handleDeleteBait(c *gin.Context) {
	baitID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.templates.DeleteBait(c.Request.Context(), baitID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "bait deleted")
}

// Accessories

func (s *Server) handleListAccessories(c *gin.Context) {
	accessories, err := s.templates.ListAccessories(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"accessories": accessories})
}

func (s *Server) handleCreateAccessory(c *gin.Context) {
	var accessory models.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.templates.CreateAccessory(c.Request.Context(), &accessory); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"accessory": accessory, "message": "accessory created"})
}

func (s *Server) handleUpdateAccessory(c *gin.Context) {
	accessoryID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var accessory models.Accessory
	if err := c.ShouldBindJSON(&accessory); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	accessory.AccessoryID = accessoryID
	if err := s.templates.UpdateAccessory(c.Request.Context(), &accessory); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"accessory": accessory, "message": "accessory updated"})
}

func (s *Server) handleDeleteAccessory(c *gin.Context) {
	accessoryID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.templates.DeleteAccessory(c.Request.Context(), accessoryID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "accessory deleted")
}

func (s *Server) handleAccessoryTemplate(c *gin.Context) {
	var buf bytes.Buffer
	if err := export.WriteAccessoryTemplate(&buf); err != nil {
		respondAppError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="accessory_template.csv"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) handleImportAccessories(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	accessories, rowErrs, err := export.ParseAccessoryCSV(file)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := s.templates.ImportAccessories(c.Request.Context(), accessories)
	for _, re := range rowErrs {
		result.Skipped++
		result.Errors = append(result.Errors, re.Error())
	}
	respondOK(c, gin.H{"result": result})
}

// Generic items

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.templates.ListItems(c.Request.Context())
	if err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"items": items})
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.templates.CreateItem(c.Request.Context(), &item); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "item created"})
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	var item models.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	item.ItemID = itemID
	if err := s.templates.UpdateItem(c.Request.Context(), &item); err != nil {
		respondAppError(c, err)
		return
	}
	respondOK(c, gin.H{"item": item, "message": "item updated"})
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		return
	}
	if err := s.templates.DeleteItem(c.Request.Context(), itemID); err != nil {
		respondAppError(c, err)
		return
	}
	respondMessage(c, "item deleted")
}

// handleExportCatalog streams the full catalog as an XLSX workbook.
func (s *Server) handleExportCatalog(c *gin.Context) {
	ctx := c.Request.Context()

	fish, err := s.templates.ListFish(ctx)
	if err != nil {
		respondAppError(c, err)
		return
	}
	rods, err := s.templates.ListRods(ctx)
	if err != nil {
		respondAppError(c, err)
		return
	}
	baits, err := s.templates.ListBaits(ctx)
	if err != nil {
		respondAppError(c, err)
		return
	}
	accessories, err := s.templates.ListAccessories(ctx)
	if err != nil {
		respondAppError(c, err)
		return
	}
	items, err := s.templates.ListItems(ctx)
	if err != nil {
		respondAppError(c, err)
		return
	}

	wb, err := export.CatalogWorkbook(fish, rods, baits, accessories, items)
	if err != nil {
		respondAppError(c, err)
		return
	}
	defer wb.Close()

	c.Header("Content-Disposition", `attachment; filename="catalog.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := wb.Write(c.Writer); err != nil {
		respondAppError(c, err)
	}
}

type markdownPreviewRequest struct {
	Text string `json:"text"`
}

// handleMarkdownPreview renders description markdown the way the game
// client will display it, for the admin form preview pane.
func (s *Server) handleMarkdownPreview(c *gin.Context) {
	var req markdownPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	rendered := markdown.ToHTML([]byte(req.Text), p, renderer)

	respondOK(c, gin.H{"html": string(rendered)})
}
