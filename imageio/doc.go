// Package imageio converts between the standard library image types and
// sprite stencils and canvases.
//
// Conversion goes through straight (non-premultiplied) 8-bit values. Layouts
// whose base colour is Luma, LumaAlpha, RGB or RGBA are supported; layouts
// carrying a Normal triple keep it at its default on import and ignore it
// on export. UV layouts have no colour and are rejected with
// ErrUnsupportedChannel.
//
// Luma is computed with the Rec. 601 weights used by image/color.GrayModel.
package imageio
