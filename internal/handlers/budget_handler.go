package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"budgetbook/internal/models"
	"budgetbook/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// missingAttributes builds the 422 message listing the accepted attribute
// names for an operation.
func missingAttributes(attributes []string) string {
	return "Missing attribute(s) to update. Valid attributes are: " + strings.Join(attributes, ", ")
}

// budgetPayload renders a budget response, substituting an empty object when
// the budget does not exist or belongs to someone else.
func budgetPayload(budget *services.BudgetResponse) any {
	if budget == nil {
		return gin.H{}
	}
	return budget
}

// GetBudget handles fetching a single budget with its items.
// @Summary     Get a budget
// @Description Get one of the authenticated user's budgets by ID
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Budget ID"
// @Success     200 {object} map[string]interface{} "Budget with items; empty object when not found"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Invalid budget ID"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to retrieve budget(s).")
		return
	}

	budgetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "No budget_id provided"})
		return
	}

	budget, err := h.budgetService.GetBudget(uint(budgetID), userID)
	if err != nil {
		respondWithError(c, err, "Unable to retrieve budget(s).")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budgetPayload(budget)})
}

// GetBudgets handles listing all budgets of the authenticated user.
// @Summary     List budgets
// @Description List all of the authenticated user's budgets with their items
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Budgets in creation order"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to retrieve budget(s).")
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(userID)
	if err != nil {
		respondWithError(c, err, "Unable to retrieve budget(s).")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// CreateBudget handles the creation of a new budget.
// @Summary     Create a budget
// @Description Create a new budget with a name, gross income, and duration
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "name, gross_income, month_duration"
// @Success     200 {object} map[string]interface{} "Created budget"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/create [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to create budget.")
		return
	}

	body := bindBody(c)
	if !hasKeys(body, services.BudgetAttributes...) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": missingAttributes(services.BudgetAttributes)})
		return
	}

	budgetID, err := h.budgetService.CreateBudget(
		userID,
		bodyString(body, "name"),
		bodyString(body, "month_duration"),
		bodyString(body, "gross_income"),
	)
	if err != nil {
		respondWithError(c, err, "Unable to create budget.")
		return
	}

	budget, err := h.budgetService.GetBudget(budgetID, userID)
	if err != nil {
		respondWithError(c, err, "Unable to create budget.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budgetPayload(budget)})
}

// CreateBudgetItem handles adding an item to one of the user's budgets.
// @Summary     Create a budget item
// @Description Add a categorized item to an owned budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "name, category, total, budget_id"
// @Success     200 {object} map[string]interface{} "Updated budget and new item ID"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/item/create [post]
func (h *BudgetHandler) CreateBudgetItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to create budget item.")
		return
	}

	body := bindBody(c)
	required := append(append([]string{}, services.BudgetItemAttributes...), "budget_id")
	if !hasKeys(body, required...) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": missingAttributes(required)})
		return
	}

	budgetID := bodyID(body, "budget_id")
	itemID, err := h.budgetService.CreateBudgetItem(
		bodyString(body, "name"),
		bodyString(body, "category"),
		bodyString(body, "total"),
		budgetID,
		userID,
	)
	if err != nil {
		respondWithError(c, err, "Unable to create budget item.")
		return
	}

	budget, err := h.budgetService.GetBudget(budgetID, userID)
	if err != nil {
		respondWithError(c, err, "Unable to create budget item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budgetPayload(budget), "budget_item_id": itemID})
}

// EditBudget handles a partial update of a budget's attributes.
// @Summary     Edit a budget
// @Description Update any subset of a budget's name, gross income, and duration
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "budget_id plus attributes to change"
// @Success     200 {object} map[string]interface{} "Updated budget"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/edit [post]
func (h *BudgetHandler) EditBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to update budget.")
		return
	}

	body := bindBody(c)
	if !hasKeys(body, "budget_id") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing budget_id"})
		return
	}

	changes := services.ChangeSet(body, services.BudgetAttributes)
	if len(changes) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": missingAttributes(services.BudgetAttributes)})
		return
	}

	budgetID, err := h.budgetService.EditBudget(bodyID(body, "budget_id"), userID, changes)
	if err != nil {
		respondWithError(c, err, "Unable to update budget.")
		return
	}

	budget, err := h.budgetService.GetBudget(budgetID, userID)
	if err != nil {
		respondWithError(c, err, "Unable to update budget.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_id": budgetID, "budget": budgetPayload(budget)})
}

// EditBudgetItem handles a partial update of a budget item's attributes.
// @Summary     Edit a budget item
// @Description Update any subset of an item's name, category, and total
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "budget_id, item_id plus attributes to change"
// @Success     200 {object} map[string]interface{} "Updated budget and item ID"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/item/edit [post]
func (h *BudgetHandler) EditBudgetItem(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to update budget item.")
		return
	}

	body := bindBody(c)
	if !hasKeys(body, "budget_id", "item_id") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing budget_id and/or item_id"})
		return
	}

	changes := services.ChangeSet(body, services.BudgetItemAttributes)
	if len(changes) == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": missingAttributes(services.BudgetItemAttributes)})
		return
	}

	budgetID := bodyID(body, "budget_id")
	itemID, err := h.budgetService.EditBudgetItem(bodyID(body, "item_id"), budgetID, changes)
	if err != nil {
		respondWithError(c, err, "Unable to update budget item.")
		return
	}

	budget, err := h.budgetService.GetBudget(budgetID, userID)
	if err != nil {
		respondWithError(c, err, "Unable to update budget item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget_item_id": itemID, "budget": budgetPayload(budget)})
}

// DeleteBudget handles removing a budget and all of its items.
// @Summary     Delete a budget
// @Description Delete an owned budget and cascade its items
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "budget_id"
// @Success     200 {object} map[string]string "Confirmation message"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/delete [post]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to delete budget.")
		return
	}

	body := bindBody(c)
	if !hasKeys(body, "budget_id") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing budget_id"})
		return
	}

	name, err := h.budgetService.DeleteBudget(bodyID(body, "budget_id"), userID)
	if err != nil {
		respondWithError(c, err, "Unable to delete budget.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget '" + name + "' and its contents has been deleted"})
}

// DeleteBudgetItem handles removing a single item from a budget.
// @Summary     Delete a budget item
// @Description Delete one item from an owned budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body map[string]interface{} true "item_id, budget_id"
// @Success     200 {object} map[string]string "Confirmation message"
// @Failure     401 {object} map[string]string "Unauthorized"
// @Failure     422 {object} map[string]string "Validation error"
// @Failure     503 {object} map[string]string "Server error"
// @Router      /budget/item/delete [post]
func (h *BudgetHandler) DeleteBudgetItem(c *gin.Context) {
	_, err := getUserID(c)
	if err != nil {
		respondWithError(c, err, "Unable to delete budget item.")
		return
	}

	body := bindBody(c)
	if !hasKeys(body, "item_id", "budget_id") {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Missing item_id and/or budget_id"})
		return
	}

	descriptor, err := h.budgetService.DeleteBudgetItem(bodyID(body, "item_id"), bodyID(body, "budget_id"))
	if err != nil {
		respondWithError(c, err, "Unable to delete budget item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget item in " + descriptor + " and its contents has been deleted."})
}

// GetItemCategories returns the fixed list of valid item categories.
// @Summary     List item categories
// @Description List the category values accepted for budget items
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]string "Category values"
// @Router      /budget/item/categories [get]
func (h *BudgetHandler) GetItemCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.ItemCategories()})
}
