package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monlivredecuisine/backend/internal/models"
	"github.com/monlivredecuisine/backend/internal/service"
	"github.com/monlivredecuisine/backend/internal/types"
)

// RecipeHandler serves the recipe CRUD endpoints.
type RecipeHandler struct {
	recipes *service.RecipeService
	auth    *service.AuthService
}

func NewRecipeHandler(recipes *service.RecipeService, auth *service.AuthService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, auth: auth}
}

func (h *RecipeHandler) List(c *gin.Context) {
	filters := types.RecipeFilters{
		Categorie: c.Query("categorie"),
		Search:    c.Query("search"),
		Tag:       c.Query("tag"),
	}

	if filters.Categorie != "" && !models.IsKnownCategorie(filters.Categorie) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown categorie"})
		return
	}
	if v := c.Query("auteur_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid auteur_id"})
			return
		}
		filters.AuteurID = uint(id)
	}
	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skip"})
			return
		}
		filters.Offset = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		filters.Limit = n
	}

	recipes, err := h.recipes.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req types.RecipeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !models.IsKnownCategorie(req.Categorie) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown categorie"})
		return
	}

	actor, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipe := models.Recipe{
		Titre:        req.Titre,
		Categorie:    req.Categorie,
		TempsPrep:    req.TempsPrep,
		TempsCuisson: req.TempsCuisson,
		Temperature:  req.Temperature,
		Tags:         models.TagList(req.Tags),
	}
	for _, in := range req.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Nom:      in.Nom,
			Quantite: in.Quantite,
			Unite:    in.Unite,
		})
	}
	for _, st := range req.Steps {
		recipe.Steps = append(recipe.Steps, models.Step{
			Description: st.Description,
			Ordre:       st.Ordre,
		})
	}

	created, err := h.recipes.Create(c.Request.Context(), actor.ID, &recipe)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RecipeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Categorie != nil && !models.IsKnownCategorie(*req.Categorie) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown categorie"})
		return
	}

	actor, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	updated, err := h.recipes.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	actor, err := h.currentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) currentUser(c *gin.Context) (*models.User, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return nil, service.ErrNotFound
	}
	return h.auth.GetUserByID(c.Request.Context(), userID.(uint))
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
