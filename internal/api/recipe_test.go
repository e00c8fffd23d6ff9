package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recipeResponse struct {
	ID           uint     `json:"id"`
	Titre        string   `json:"titre"`
	Categorie    string   `json:"categorie"`
	TempsPrep    *int     `json:"temps_prep"`
	TempsCuisson *int     `json:"temps_cuisson"`
	Tags         []string `json:"tags"`
	AuteurID     uint     `json:"auteur_id"`
	Ingredients  []struct {
		Nom      string   `json:"nom"`
		Quantite *float64 `json:"quantite"`
		Unite    *string  `json:"unite"`
	} `json:"ingredients"`
	Steps []struct {
		Description string `json:"description"`
		Ordre       int    `json:"ordre"`
	} `json:"steps"`
}

func TestCreateRecipeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe recipeResponse
	decodeJSON(t, w, &recipe)
	assert.NotZero(t, recipe.ID)
	assert.Equal(t, "Omelette", recipe.Titre)
	assert.Equal(t, "Plat", recipe.Categorie)
	require.NotNil(t, recipe.TempsPrep)
	assert.Equal(t, 15, *recipe.TempsPrep)
	assert.Equal(t, []string{"rapide"}, recipe.Tags)
	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, "Tomate", recipe.Ingredients[0].Nom)
	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, 1, recipe.Steps[0].Ordre)
}

func TestCreateRecipeEndpointRequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	w := srv.request(t, http.MethodPost, "/recipes", "", sampleRecipeBody("Omelette"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRecipeEndpointUnknownCategorie(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	body := sampleRecipeBody("Omelette")
	body["categorie"] = "Boisson"
	w := srv.request(t, http.MethodPost, "/recipes", token, body)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestGetRecipeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)

	// Reads are public.
	w = srv.request(t, http.MethodGet, fmt.Sprintf("/recipes/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched recipeResponse
	decodeJSON(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Len(t, fetched.Ingredients, 2)
}

func TestGetRecipeEndpointNotFound(t *testing.T) {
	srv := newTestServer(t)

	w := srv.request(t, http.MethodGet, "/recipes/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.request(t, http.MethodGet, "/recipes/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecipesEndpointFilters(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	dessert := sampleRecipeBody("Gâteau")
	dessert["categorie"] = "Dessert"
	require.Equal(t, http.StatusCreated, srv.request(t, http.MethodPost, "/recipes", token, dessert).Code)
	require.Equal(t, http.StatusCreated, srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette")).Code)

	w := srv.request(t, http.MethodGet, "/recipes?categorie=Dessert", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []recipeResponse
	decodeJSON(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Gâteau", list[0].Titre)

	w = srv.request(t, http.MethodGet, "/recipes?categorie=Inconnue", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.request(t, http.MethodGet, "/recipes?search=omel", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Omelette", list[0].Titre)

	w = srv.request(t, http.MethodGet, "/recipes?limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &list)
	assert.Len(t, list, 1)
}

func TestUpdateRecipeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)

	w = srv.request(t, http.MethodPut, fmt.Sprintf("/recipes/%d", created.ID), token, gin.H{
		"titre": "Omelette aux herbes",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated recipeResponse
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Omelette aux herbes", updated.Titre)
	assert.Equal(t, "Plat", updated.Categorie)
	assert.Len(t, updated.Ingredients, 2)
}

func TestUpdateRecipeEndpointTagsNullClears(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)
	require.Equal(t, []string{"rapide"}, created.Tags)

	// Explicit null on the wire clears the tags; other fields stay.
	w = srv.request(t, http.MethodPut, fmt.Sprintf("/recipes/%d", created.ID), token, gin.H{"tags": nil})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated recipeResponse
	decodeJSON(t, w, &updated)
	assert.Nil(t, updated.Tags)
	assert.Equal(t, "Omelette", updated.Titre)
}

func TestUpdateRecipeEndpointForbidden(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.register(t, "Alice", "alice@example.com", "secret1")
	other := srv.register(t, "Bob", "bob@example.com", "secret2")

	w := srv.request(t, http.MethodPost, "/recipes", owner, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)

	w = srv.request(t, http.MethodPut, fmt.Sprintf("/recipes/%d", created.ID), other, gin.H{"titre": "Vol"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteRecipeEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.register(t, "Alice", "alice@example.com", "secret1")

	w := srv.request(t, http.MethodPost, "/recipes", token, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)

	w = srv.request(t, http.MethodDelete, fmt.Sprintf("/recipes/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = srv.request(t, http.MethodGet, fmt.Sprintf("/recipes/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipeEndpointForbidden(t *testing.T) {
	srv := newTestServer(t)
	owner := srv.register(t, "Alice", "alice@example.com", "secret1")
	other := srv.register(t, "Bob", "bob@example.com", "secret2")

	w := srv.request(t, http.MethodPost, "/recipes", owner, sampleRecipeBody("Omelette"))
	require.Equal(t, http.StatusCreated, w.Code)
	var created recipeResponse
	decodeJSON(t, w, &created)

	w = srv.request(t, http.MethodDelete, fmt.Sprintf("/recipes/%d", created.ID), other, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
