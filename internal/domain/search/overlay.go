// Package search implementa el buscador superpuesto de productos: filtrado
// por texto libre y el controlador de teclado que navega los candidatos.
package search

import (
	"strings"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// Teclas que el controlador interpreta mientras el buscador está abierto.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
)

// FocusPort es el puerto hacia la pantalla: a dónde va el foco al abrir y
// cerrar el buscador y qué fila mantener visible. La lógica de navegación no
// depende de ninguna pantalla concreta.
type FocusPort interface {
	FocusFilterInput()
	FocusCodeInput()
	ScrollCandidateIntoView(index int)
}

// NopFocusPort descarta las señales de foco. Útil para hosts sin pantalla.
type NopFocusPort struct{}

func (NopFocusPort) FocusFilterInput()           {}
func (NopFocusPort) FocusCodeInput()             {}
func (NopFocusPort) ScrollCandidateIntoView(int) {}

// Filter devuelve los productos cuyo "código nombre" contiene el texto,
// sin distinguir mayúsculas. Texto vacío devuelve todos los candidatos.
func Filter(source []entity.Product, text string) []entity.Product {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		out := make([]entity.Product, len(source))
		copy(out, source)
		return out
	}

	var out []entity.Product
	for _, p := range source {
		haystack := strings.ToLower(p.Code + " " + p.Name)
		if strings.Contains(haystack, needle) {
			out = append(out, p)
		}
	}
	return out
}

// OverlayController gobierna el buscador superpuesto: estado abierto/cerrado,
// texto de filtro, candidatos y cursor. El cursor siempre queda dentro de
// [0, len(candidatos)-1] salvo con lista vacía, donde permanece en cero.
type OverlayController struct {
	focus FocusPort

	open       bool
	source     []entity.Product
	filterText string
	candidates []entity.Product
	cursor     int
}

// NewOverlayController crea el controlador cerrado. Con focus nil usa
// NopFocusPort.
func NewOverlayController(focus FocusPort) *OverlayController {
	if focus == nil {
		focus = NopFocusPort{}
	}
	return &OverlayController{focus: focus}
}

// Open abre el buscador sobre el catálogo dado, con filtro vacío y el cursor
// en la primera fila. Mueve el foco al campo de filtro.
func (c *OverlayController) Open(source []entity.Product) {
	c.open = true
	c.source = source
	c.filterText = ""
	c.candidates = Filter(source, "")
	c.cursor = 0
	c.focus.FocusFilterInput()
}

// SetFilter recalcula los candidatos con el nuevo texto y regresa el cursor a
// la primera fila. Ignorado con el buscador cerrado.
func (c *OverlayController) SetFilter(text string) {
	if !c.open {
		return
	}
	c.filterText = text
	c.candidates = Filter(c.source, text)
	c.cursor = 0
}

// MoveCursor desplaza el cursor delta filas, recortando a los extremos de la
// lista. Sin candidatos no hace nada. Si el cursor cambió, pide mantener la
// fila visible.
func (c *OverlayController) MoveCursor(delta int) {
	if !c.open || len(c.candidates) == 0 {
		return
	}
	next := c.cursor + delta
	if next < 0 {
		next = 0
	}
	if next > len(c.candidates)-1 {
		next = len(c.candidates) - 1
	}
	if next == c.cursor {
		return
	}
	c.cursor = next
	c.focus.ScrollCandidateIntoView(next)
}

// Commit selecciona el candidato bajo el cursor, cierra el buscador y regresa
// el foco al campo de código. Sin candidatos no hace nada y el buscador sigue
// abierto. Con el cursor fuera de rango cae al primer candidato.
func (c *OverlayController) Commit() (entity.Product, bool) {
	if !c.open || len(c.candidates) == 0 {
		return entity.Product{}, false
	}
	idx := c.cursor
	if idx < 0 || idx >= len(c.candidates) {
		idx = 0
	}
	selected := c.candidates[idx]
	c.close()
	return selected, true
}

// SelectRow selecciona directamente la fila indicada (clic del operador).
func (c *OverlayController) SelectRow(index int) (entity.Product, bool) {
	if !c.open || index < 0 || index >= len(c.candidates) {
		return entity.Product{}, false
	}
	selected := c.candidates[index]
	c.close()
	return selected, true
}

// Cancel cierra el buscador sin seleccionar y regresa el foco al campo de
// código.
func (c *OverlayController) Cancel() {
	if !c.open {
		return
	}
	c.close()
}

// HandleKey interpreta una tecla. Solo actúa con el buscador abierto: cerrado,
// toda tecla se ignora (el oyente se desconecta al cerrar). Retorna el
// producto seleccionado cuando la tecla fue Enter con candidatos.
func (c *OverlayController) HandleKey(key string) (entity.Product, bool) {
	if !c.open {
		return entity.Product{}, false
	}
	switch key {
	case KeyArrowDown:
		c.MoveCursor(1)
	case KeyArrowUp:
		c.MoveCursor(-1)
	case KeyEnter:
		return c.Commit()
	case KeyEscape:
		c.Cancel()
	}
	return entity.Product{}, false
}

// IsOpen indica si el buscador está abierto.
func (c *OverlayController) IsOpen() bool { return c.open }

// FilterText devuelve el texto de filtro vigente.
func (c *OverlayController) FilterText() string { return c.filterText }

// Cursor devuelve la fila bajo el cursor.
func (c *OverlayController) Cursor() int { return c.cursor }

// Candidates devuelve una copia de los candidatos vigentes.
func (c *OverlayController) Candidates() []entity.Product {
	out := make([]entity.Product, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// close descarta todo el estado transitorio del buscador.
func (c *OverlayController) close() {
	c.open = false
	c.source = nil
	c.filterText = ""
	c.candidates = nil
	c.cursor = 0
	c.focus.FocusCodeInput()
}
