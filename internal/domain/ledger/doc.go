// Package ledger contiene las reglas puras del libro de movimientos de stock:
// signo de las cantidades, importes por línea con IVA, totales de cabecera,
// valorización por costo promedio ponderado y manejo de rangos de fechas.
//
// No tiene dependencias de infraestructura; lo usan tanto los casos de uso
// como los repositorios en memoria.
package ledger
