// Package constants defines the physical constants, unit conversions and
// default parameter values shared by the canort model packages.
//
// Units follow the model's interface contract: lengths in meters,
// temperatures in kelvin, frequencies in GHz, angles in degrees, densities
// in g/cm³ unless a name says otherwise.
package constants

// Physical constants.
const (
	SpeedOfLight      = 299792458.0    // m/s
	PlanckConstant    = 6.62607015e-34 // J·s
	BoltzmannConstant = 1.380649e-23   // J/K
	StefanBoltzmann   = 5.670374419e-8 // W·m⁻²·K⁻⁴
)

// Water properties.
const (
	WaterDensityKgM3 = 1000.0 // kg/m³ at 20 °C
	WaterDensityGCm3 = 1.0    // g/cm³ at 20 °C
)

// Unit conversions.
const (
	GHz          = 1e9
	MMToM        = 1e-3
	CMToM        = 1e-2
	GCm3ToKgM3   = 1e3
	ZeroCelsiusK = 273.15
)

// Canopy layer defaults.
const (
	DefaultLeafThickness  = 0.17e-3 // m
	DefaultDryMassDensity = 0.3     // g/cm³
	DefaultWaterFraction  = 0.0     // m³/m³
	DefaultLAI            = 0.0     // m²/m²
	DefaultTemperature    = 293.15  // K

	// Layers added by Canopy.Resize.
	ResizeLayerThickness   = 1.0   // m
	ResizeLayerTemperature = 300.0 // K
)

// Soil defaults.
const (
	DefaultSoilTemperature     = 293.15 // K
	DefaultSoilMoisture        = 0.2    // m³/m³
	DefaultSandFraction        = 0.5
	DefaultClayFraction        = 0.2
	DefaultRMSHeight           = 0.01 // m
	DefaultCorrelationLength   = 0.1  // m
	DefaultSoilBulkDensity     = 1.3  // g/cm³
	DefaultSoilSpecificDensity = 2.65 // g/cm³
)

// Sensor limits.
const (
	MinMicrowaveFrequency = 0.3  // GHz; anything lower suggests a unit error
	MaxIncidenceAngle     = 90.0 // degrees from nadir
)
