// Package i8086 decodes the MOV instruction family of the Intel 8086.
//
// # Supported Encodings
//
// The decoder handles the five MOV encodings that move data between registers,
// memory and immediates:
//
//	1011 w reg              immediate to register
//	1000 10 d w  mod reg rm register/memory to/from register
//	1100 011 w   mod 000 rm immediate to register/memory
//	1010 000 w              memory to accumulator
//	1010 001 w              accumulator to memory
//
// # Addressing
//
// The mod field of the second byte selects the addressing mode:
//   - 00: memory, no displacement, except rm 110 which is a direct 16 bit address
//   - 01: memory, 8 bit signed displacement
//   - 10: memory, 16 bit signed displacement
//   - 11: register to register
//
// # Output
//
// Instructions render in NASM syntax, for example "mov ax, [bx + si + 4]" or
// "mov [bp + di], byte 7". Displacements and immediates print as signed decimal
// numbers, absolute addresses as unsigned decimal numbers.
//
// # Errors
//
// Decoding fails fast. Every failure is a *DecodeError that carries the error kind,
// the byte offset and the raw byte value involved.
package i8086
