package sketch

// Register both backends with the registry, vector first.
import (
	_ "github.com/gogpu/sketch/backend/raster"
	_ "github.com/gogpu/sketch/backend/vector"
)
