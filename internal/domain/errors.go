package domain

import "errors"

// ErrBadPayload el backend devolvió un cuerpo con forma inesperada; la
// frontera de decodificación falla cerrada en vez de propagar ceros.
var ErrBadPayload = errors.New("payload con forma inesperada")
