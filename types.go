package algodft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Complex is a type constraint for the complex sample types supported by the
// engine. The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex
