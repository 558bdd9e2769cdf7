package terrain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// Raster is an opened DEM handle. The full elevation grid is held resident
// in memory as float32; this keeps ReadSquareWindow and ValueAt allocation-
// free apart from the window itself, at the cost of O(W*H) memory for the
// whole raster — acceptable for the rover-scale rasters this format targets
// and the reason this package does not mmap or stream from disk.
type Raster struct {
	gt              geotransform.Geotransform
	w, h            int
	crsIsGeographic bool
	bodyRadiusM     float64
	resolutionM     float64
	data            []float32 // row-major, data[y*w+x]
}

// Open reads a DEM file in this package's binary format and validates its
// header. It does not validate elevation values.
func Open(path string) (*Raster, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terrain: open %s: %w", path, err)
	}
	return decode(raw)
}

func decode(raw []byte) (*Raster, error) {
	if len(raw) < headerSizeBase {
		return nil, ErrBadMagic
	}
	r := bytes.NewReader(raw)

	var magicBuf [4]byte
	if _, err := r.Read(magicBuf[:]); err != nil {
		return nil, fmt.Errorf("terrain: read magic: %w", err)
	}
	if string(magicBuf[:]) != magic {
		return nil, ErrBadMagic
	}

	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("terrain: read version: %w", err)
	}
	if version != formatVersion {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedVersion, version)
	}

	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, fmt.Errorf("terrain: read width: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("terrain: read height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyRaster
	}

	var coeffs [6]float64
	if err := binary.Read(r, binary.LittleEndian, &coeffs); err != nil {
		return nil, fmt.Errorf("terrain: read geotransform: %w", err)
	}
	gt := geotransform.Geotransform{A0: coeffs[0], A1: coeffs[1], A2: coeffs[2], A3: coeffs[3], A4: coeffs[4], A5: coeffs[5]}
	if err := gt.Validate(); err != nil {
		return nil, fmt.Errorf("terrain: invalid geotransform: %w", err)
	}

	var crsFlag uint8
	if err := binary.Read(r, binary.LittleEndian, &crsFlag); err != nil {
		return nil, fmt.Errorf("terrain: read CRS flag: %w", err)
	}
	crsIsGeographic := crsFlag != 0

	var bodyRadiusM float64
	if err := binary.Read(r, binary.LittleEndian, &bodyRadiusM); err != nil {
		return nil, fmt.Errorf("terrain: read body radius: %w", err)
	}

	resolutionM, err := gt.ResolutionMeters(crsIsGeographic, bodyRadiusM)
	if err != nil {
		return nil, fmt.Errorf("terrain: resolution: %w", err)
	}

	n := int(w) * int(h)
	data := make([]float32, n)
	if err := binary.Read(r, binary.LittleEndian, &data); err != nil {
		return nil, fmt.Errorf("terrain: read elevations: %w", err)
	}

	return &Raster{
		gt:              gt,
		w:               int(w),
		h:               int(h),
		crsIsGeographic: crsIsGeographic,
		bodyRadiusM:     bodyRadiusM,
		resolutionM:     resolutionM,
		data:            data,
	}, nil
}

// XSize returns the raster's width in pixels.
func (r *Raster) XSize() int { return r.w }

// YSize returns the raster's height in pixels.
func (r *Raster) YSize() int { return r.h }

// ResolutionMeters returns the raster's per-pixel resolution in metres, as
// computed at Open time.
func (r *Raster) ResolutionMeters() float64 { return r.resolutionM }

// GeoToPixel converts a geographic coordinate to a global pixel coordinate.
func (r *Raster) GeoToPixel(g geotransform.Geographic) geotransform.Pixel {
	return r.gt.GeoToPixel(g)
}

// PixelToGeo converts a global pixel coordinate to a geographic coordinate.
func (r *Raster) PixelToGeo(p geotransform.Pixel) geotransform.Geographic {
	return r.gt.PixelToGeo(p)
}

// InBounds reports whether pixel p lies within the raster.
func (r *Raster) InBounds(p geotransform.Pixel) bool {
	return p.X >= 0 && p.X < r.w && p.Y >= 0 && p.Y < r.h
}

// ValueAt returns the elevation at a global pixel coordinate.
func (r *Raster) ValueAt(p geotransform.Pixel) (float64, error) {
	if !r.InBounds(p) {
		return 0, ErrOutOfBounds
	}
	return float64(r.data[p.Y*r.w+p.X]), nil
}

// WriteFile serialises the raster to path in this package's binary format,
// overwriting any existing file. It is the inverse of Open.
func (r *Raster) WriteFile(path string) error {
	var buf bytes.Buffer
	buf.WriteString(magic)
	if err := binary.Write(&buf, binary.LittleEndian, uint8(formatVersion)); err != nil {
		return fmt.Errorf("terrain: write version: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, int32(r.w)); err != nil {
		return fmt.Errorf("terrain: write width: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, int32(r.h)); err != nil {
		return fmt.Errorf("terrain: write height: %w", err)
	}
	coeffs := [6]float64{r.gt.A0, r.gt.A1, r.gt.A2, r.gt.A3, r.gt.A4, r.gt.A5}
	if err := binary.Write(&buf, binary.LittleEndian, coeffs); err != nil {
		return fmt.Errorf("terrain: write geotransform: %w", err)
	}
	var crsFlag uint8
	if r.crsIsGeographic {
		crsFlag = 1
	}
	if err := binary.Write(&buf, binary.LittleEndian, crsFlag); err != nil {
		return fmt.Errorf("terrain: write CRS flag: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, r.bodyRadiusM); err != nil {
		return fmt.Errorf("terrain: write body radius: %w", err)
	}
	if err := binary.Write(&buf, binary.LittleEndian, r.data); err != nil {
		return fmt.Errorf("terrain: write elevations: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("terrain: write %s: %w", path, err)
	}
	return nil
}

// ReadSquareWindow clips a (2*buffer+1) x (2*buffer+1) window centred on
// centre, shrinking to the raster's bounds at the edges. It reports the
// window's anchor (global pixel of its top-left corner) and the centre's
// local position within it.
func (r *Raster) ReadSquareWindow(centre geotransform.Pixel, buffer int) (*Window, error) {
	if buffer < 0 {
		buffer = 0
	}
	x0 := max(0, centre.X-buffer)
	y0 := max(0, centre.Y-buffer)
	x1 := min(r.w-1, centre.X+buffer)
	y1 := min(r.h-1, centre.Y+buffer)
	if x1 < x0 || y1 < y0 {
		return nil, ErrEmptyWindow
	}

	w, h := x1-x0+1, y1-y0+1
	elev := make([][]float64, h)
	for y := 0; y < h; y++ {
		row := make([]float64, w)
		for x := 0; x < w; x++ {
			v := r.data[(y0+y)*r.w+(x0+x)]
			if math.IsNaN(float64(v)) {
				row[x] = math.NaN()
			} else {
				row[x] = float64(v)
			}
		}
		elev[y] = row
	}

	anchor := geotransform.Pixel{X: x0, Y: y0}
	return &Window{
		Elevations: elev,
		W:          w,
		H:          h,
		Anchor:     anchor,
		Local:      geotransform.GlobalToLocal(centre, anchor),
	}, nil
}
