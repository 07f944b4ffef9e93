// Package surface provides in-memory implementations of the editor's
// rendered and plain surfaces.
//
// Rendered holds an HTML fragment and a text selection and executes
// formatting commands against them the way a browser editing engine
// would, including the markup quirks of each engine flavour. Plain is
// the textarea counterpart.
//
// Neither surface draws anything. Hosts such as the terminal UI render
// their state and drive visibility changes with Show, Hide and Settle.
package surface
