package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"inventory/internal/apperrors"
	"inventory/internal/dto"
	"inventory/internal/mapper"
	"inventory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const productsRoute = "/products"

// ProductHandler handles HTTP requests for products.
// Errors are returned to Fiber and rendered by the app's error handler.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group(productsRoute)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	// PATCH replaces every mutable field; the body must pass full validation.
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(mapper.ToOutDTOs(products))
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	if id <= 0 {
		return productNotFound(id)
	}

	product, err := h.service.GetProductByID(c.UserContext(), uint(id))
	if err != nil {
		return err
	}
	return c.JSON(mapper.ToOutDTO(product))
}

// HandleCreateProduct creates a new product and points Location at it.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	in, err := h.parseProduct(c)
	if err != nil {
		return err
	}

	product, err := h.service.SaveProduct(c.UserContext(), in)
	if err != nil {
		return err
	}

	// Route().Path is the registered pattern, e.g. "/api/v1/products/".
	collection := strings.TrimSuffix(c.Route().Path, "/")
	c.Location(fmt.Sprintf("%s%s/%d", c.BaseURL(), collection, product.ID))
	return c.Status(fiber.StatusCreated).JSON(mapper.ToOutDTO(product))
}

// HandleUpdateProduct overwrites an existing product with the request body.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	in, err := h.parseProduct(c)
	if err != nil {
		return err
	}
	if id <= 0 {
		return productNotFound(id)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), uint(id), in)
	if err != nil {
		return err
	}
	return c.JSON(mapper.ToOutDTO(product))
}

// HandleDeleteProduct deletes a product. Unknown IDs still get a 200.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	// Ids below 1 are never issued, so there is nothing to remove.
	if id > 0 {
		if err := h.service.DeleteProductByID(c.UserContext(), uint(id)); err != nil {
			return err
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(fmt.Sprintf("Product with id:%d have been deleted", id))
}

// parseProduct decodes and validates the request body. Validation runs
// before any service call, so a bad body never reaches storage.
func (h *ProductHandler) parseProduct(c *fiber.Ctx) (dto.InProduct, error) {
	var in dto.InProduct
	if err := c.BodyParser(&in); err != nil {
		return dto.InProduct{}, apperrors.BadRequest("Invalid request body", err)
	}
	if err := validateStruct(h.validate, in); err != nil {
		return dto.InProduct{}, err
	}
	return in, nil
}

// productID parses the :id path parameter. Only non-numeric or
// out-of-range values are rejected; zero and negative ids parse fine and
// simply never match a stored product.
func productID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.BadRequest(fmt.Sprintf("Invalid product id '%s'", raw), err)
	}
	return id, nil
}

func productNotFound(id int64) error {
	return apperrors.NotFound("Product with id %d not found", id)
}

