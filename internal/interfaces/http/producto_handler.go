package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fiapp/internal/application/dto"
	"github.com/jhoicas/fiapp/internal/application/usecase"
	"github.com/jhoicas/fiapp/internal/domain"
	"github.com/jhoicas/fiapp/pkg/logger"
)

const msgPrecioStock = "Precio y stock deben ser números"

// ProductoHandler maneja el alta, edición y baja de productos de un local.
type ProductoHandler struct {
	locales     *usecase.LocalUseCase
	productos   *usecase.ProductoUseCase
	proveedores *usecase.ProveedorUseCase
	imagenes    *usecase.ImagenUseCase
	log         *logger.Logger
}

func NewProductoHandler(
	locales *usecase.LocalUseCase,
	productos *usecase.ProductoUseCase,
	proveedores *usecase.ProveedorUseCase,
	imagenes *usecase.ImagenUseCase,
	log *logger.Logger,
) *ProductoHandler {
	return &ProductoHandler{locales: locales, productos: productos, proveedores: proveedores, imagenes: imagenes, log: log}
}

func (h *ProductoHandler) base(c *fiber.Ctx) fiber.Map {
	id := c.Params("id")
	return fiber.Map{
		"LocalID":     id,
		"LocalName":   h.locales.NombreOId(c.Context(), id),
		"Proveedores": proveedoresDe(c, h.proveedores, h.log),
	}
}

func inventarioURL(localID string) string {
	return "/tendero/locales/" + localID + "/inventario"
}

func (h *ProductoHandler) CrearForm(c *fiber.Ctx) error {
	return render(c, "tendero_create_producto", h.base(c))
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	data := h.base(c)
	var in dto.ProductoRequest
	if msg := parsearFormulario(c, &in, mensajesProducto); msg != "" {
		data["Error"] = msg
		return render(c, "tendero_create_producto", data)
	}
	data["Form"] = in
	pi, msg := convertirProducto(in)
	if msg != "" {
		data["Error"] = msg
		return render(c, "tendero_create_producto", data)
	}
	url, err := h.subirImagen(c)
	if err != nil {
		data["Error"] = h.mensajeImagen(err)
		return render(c, "tendero_create_producto", data)
	}
	pi.ImagenURL = url

	localID := c.Params("id")
	if _, err := h.productos.Crear(c.Context(), localID, pi); err != nil {
		h.log.Error().Err(err).Str("local", localID).Msg("crear producto")
		data["Error"] = err.Error()
		return render(c, "tendero_create_producto", data)
	}
	return c.Redirect(inventarioURL(localID))
}

func (h *ProductoHandler) EditarForm(c *fiber.Ctx) error {
	localID, pid := c.Params("id"), c.Params("pid")
	p, err := h.productos.Obtener(c.Context(), localID, pid)
	if err != nil {
		return c.Redirect(inventarioURL(localID))
	}
	data := h.base(c)
	data["ProductoID"] = pid
	data["Producto"] = p
	return render(c, "tendero_editar_producto", data)
}

func (h *ProductoHandler) Editar(c *fiber.Ctx) error {
	localID, pid := c.Params("id"), c.Params("pid")
	data := h.base(c)
	data["ProductoID"] = pid

	var in dto.ProductoRequest
	if msg := parsearFormulario(c, &in, mensajesEditarProducto); msg != "" {
		data["Error"] = msg
		return render(c, "tendero_editar_producto", data)
	}
	pi, msg := convertirProducto(in)
	if msg != "" {
		data["Error"] = msg
		return render(c, "tendero_editar_producto", data)
	}
	url, err := h.subirImagen(c)
	if err != nil {
		data["Error"] = h.mensajeImagen(err)
		return render(c, "tendero_editar_producto", data)
	}
	pi.ImagenURL = url

	if err := h.productos.Actualizar(c.Context(), localID, pid, pi); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Redirect(inventarioURL(localID))
		}
		h.log.Error().Err(err).Str("local", localID).Str("producto", pid).Msg("editar producto")
		data["Error"] = err.Error()
		return render(c, "tendero_editar_producto", data)
	}
	return c.Redirect(inventarioURL(localID))
}

func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	localID, pid := c.Params("id"), c.Params("pid")
	if err := h.productos.Eliminar(c.Context(), localID, pid); err != nil {
		h.log.Error().Err(err).Str("local", localID).Str("producto", pid).Msg("eliminar producto")
	}
	return c.Redirect(inventarioURL(localID))
}

// convertirProducto valida precio (decimal) y stock (entero).
func convertirProducto(in dto.ProductoRequest) (dto.ProductoInput, string) {
	precio, err := usecase.ParseMonto(in.Precio)
	if err != nil {
		return dto.ProductoInput{}, msgPrecioStock
	}
	stock, err := strconv.Atoi(in.Stock)
	if err != nil {
		return dto.ProductoInput{}, msgPrecioStock
	}
	return dto.ProductoInput{Nombre: in.Nombre, Precio: precio, Stock: stock, Proveedor: in.Proveedor}, ""
}

// subirImagen guarda el archivo del campo "imagen" si se envió. Sin archivo devuelve "".
func (h *ProductoHandler) subirImagen(c *fiber.Ctx) (string, error) {
	fh, err := c.FormFile("imagen")
	if err != nil || fh == nil || fh.Filename == "" {
		return "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, fh.Size+1))
	if err != nil {
		return "", err
	}
	return h.imagenes.Guardar(c.Context(), dto.ImagenUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Data:        data,
	})
}

func (h *ProductoHandler) mensajeImagen(err error) string {
	if !errors.Is(err, domain.ErrImagenInvalida) {
		h.log.Error().Err(err).Msg("guardar imagen")
	}
	return domain.ErrImagenInvalida.Error()
}
