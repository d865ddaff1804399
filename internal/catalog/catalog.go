package catalog

// Category enum constants
const (
	CategoryGarment  = "prendas"
	CategoryFootwear = "zapatos"
)

// SizeUnica is the fixed size for one-size-fits-all garments (tocas)
const SizeUnica = "Única"

// ColorNA is the sentinel color stored for footwear line items
const ColorNA = "N/A"

// StatusDamageReplacement is the line item status when photo evidence applies
const StatusDamageReplacement = "Cambio por Desgaste/Daño"

// DamageNotesEvidence replaces user notes when a photo is attached
const DamageNotesEvidence = "Evidencia fotográfica adjunta"

var (
	ClothingSizes = []string{"S", "M", "L", "XL", "XXL", "XXXL"}
	FootwearSizes = []string{"35", "36", "37", "38", "39", "40", "41", "42", "43", "44"}
)

// Colors lists the garment color options offered by the form
var Colors = []string{"Amarillo", "Anaranjado", "Azulino", "Azul Marino", "Celeste", "ENTRENAMIENTO"}

// Areas lists the organizational areas a requester can belong to
var Areas = []string{
	"PRODUCCIÓN",
	"ARTES GRÁFICAS",
	"MANTENIMIENTO",
	"CONTROL DE CALIDAD",
	"SANEAMIENTO",
	"RECURSOS HUMANOS",
	"ÁREAS ADMINISTRATIVAS",
	"Externo (proveedores, visitas)",
}

// Item defines one requestable uniform or footwear article
type Item struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Sizes    []string `json:"sizes"`
	Category string   `json:"category"`
}

// Reason defines one request motive; some motives demand photo evidence
type Reason struct {
	Key           string `json:"key"`
	Label         string `json:"label"`
	RequiresPhoto bool   `json:"requires_photo"`
}

// DefaultReasonKey is the motive preselected on a fresh draft
const DefaultReasonKey = "RENOVACION_3M"

// Reasons lists the request motives in display order
var Reasons = []Reason{
	{Key: "RENOVACION_3M", Label: "Renovación de 3 meses"},
	{Key: "RENOVACION_ANUAL", Label: "Renovación anual"},
	{Key: "SEGUNDO_JUEGO_ENTRENAMIENTO", Label: "Segundo juego de entrenamiento"},
	{Key: "ACCIDENTE_DESGASTE", Label: "Cambio por accidentes o desgaste", RequiresPhoto: true},
}

// Items lists the catalog in definition order. Validation and line item
// construction both iterate in this order, so it must stay stable.
var Items = []Item{
	{Key: "polos", Label: "Polos", Sizes: ClothingSizes, Category: CategoryGarment},
	{Key: "pantalon", Label: "Pantalón de Trabajo", Sizes: ClothingSizes, Category: CategoryGarment},
	{Key: "chaqueta", Label: "Chaqueta", Sizes: ClothingSizes, Category: CategoryGarment},
	{Key: "tocas", Label: "Tocas", Sizes: []string{SizeUnica}, Category: CategoryGarment},
	{Key: "mecanico", Label: "Zapato Mecánico", Sizes: FootwearSizes, Category: CategoryFootwear},
	{Key: "dielectrico", Label: "Zapato Dieléctrico", Sizes: FootwearSizes, Category: CategoryFootwear},
}

// ItemByKey returns the catalog item for key, if defined
func ItemByKey(key string) (Item, bool) {
	for _, it := range Items {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// ReasonByKey returns the reason definition for key, if defined
func ReasonByKey(key string) (Reason, bool) {
	for _, r := range Reasons {
		if r.Key == key {
			return r, true
		}
	}
	return Reason{}, false
}

// FixedSize reports whether the item's size is not user-editable
// (single-size articles such as tocas).
func (i Item) FixedSize() bool {
	return len(i.Sizes) == 1 && i.Sizes[0] == SizeUnica
}

// IsGarment reports whether the item requires a color selection
func (i Item) IsGarment() bool {
	return i.Category == CategoryGarment
}
