package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// Coefficients are stored as float64 and rounded to the lane type when
// broadcast. Bit patterns are typed for the constructor that takes them:
// uint64 for FloatConstants.Bits, int64 for IntConstants.Set.

// Float32 constants for the accurate logarithms (FreeBSD e_log2f.c)
var (
	logLg1_f32 float64 = 0.66666662693 // 0xaaaaaa.0p-24
	logLg2_f32 float64 = 0.40000972152 // 0xccce13.0p-25
	logLg3_f32 float64 = 0.28498786688 // 0x91e9ee.0p-25
	logLg4_f32 float64 = 0.24279078841 // 0xf89e26.0p-26

	// sqrt(2)/2 bit pattern; the reduction centres the mantissa on it.
	logSqrtHalfBits_f32 int64  = 0x3f3504f3
	logOneBits_f32      int64  = 0x3F800000
	logHiMask_f32       uint64 = 0xFFFFF000

	logIvLn2Hi_f32 float64 = 1.4428710938e+00 // 0x3fb8b000
	logIvLn2Lo_f32 float64 = -1.7605285393e-04

	logLn2Hi_f32 float64 = 6.9313812256e-01 // 0x3f317180
	logLn2Lo_f32 float64 = 9.0580006145e-06 // 0x3717f7d1

	logIvLn10Hi_f32  float64 = 4.3432617188e-01
	logIvLn10Lo_f32  float64 = -3.1689971365e-05
	logLog10_2Hi_f32 float64 = 3.0102920532e-01
	logLog10_2Lo_f32 float64 = 7.9034151668e-07
)

// Float32 constants for the estimate logarithms
var (
	fasterLog2C_f32 float64 = 0.346607

	fastLog2C0_f32 float64 = -0.0258411662
	fastLog2C1_f32 float64 = 0.1217970128
	fastLog2C2_f32 float64 = -0.2779042655
	fastLog2C3_f32 float64 = 0.4575485901
	fastLog2C4_f32 float64 = -0.7181451002
	fastLog2C5_f32 float64 = 1.4425449290
)

// Float32 constants for Exp (FreeBSD e_expf.c)
var (
	expLn2HiBits_f32  uint64 = 0x3f317200
	expLn2LoBits_f32  uint64 = 0x35bfbe8e
	expInvLn2Bits_f32 uint64 = 0x3fb8aa3b

	expP1_f32 float64 = 1.6666625440e-1
	expP2_f32 float64 = -2.7667332906e-3

	// |x| thresholds on the absolute bit pattern
	expHalfLn2Bits_f32  int64 = 0x3eb17218 // 0.5*ln2
	expThreeHalfLn2_f32 int64 = 0x3f851592 // 1.5*ln2
	expTinyBits_f32     int64 = 0x39000000 // 2^-13
	expOverflowBits_f32 int64 = 0x42aeac50 // ~87.34
)

// Float32 constants for Exp2 (Cephes exp2f.c)
var (
	exp2P0_f32 float64 = 1.535336188319500e-4
	exp2P1_f32 float64 = 1.339887440266574e-3
	exp2P2_f32 float64 = 9.618437357674640e-3
	exp2P3_f32 float64 = 5.550332471162809e-2
	exp2P4_f32 float64 = 2.402264791363012e-1
	exp2P5_f32 float64 = 6.931472028550421e-1

	exp2Max_f32 int64 = 127
	exp2Min_f32 int64 = -126
)

// Float32 constants for Exp10 (Cephes exp10f.c)
var (
	exp10P0_f32 float64 = 2.063216740311022e-1
	exp10P1_f32 float64 = 5.420251702225484e-1
	exp10P2_f32 float64 = 1.171292686296281
	exp10P3_f32 float64 = 2.034649854009453
	exp10P4_f32 float64 = 2.650948748208892
	exp10P5_f32 float64 = 2.302585167056758

	exp10Log210_f32 float64 = 3.32192809488736234787
	exp10Lg102A_f32 float64 = 3.00781250000000000000e-1
	exp10Lg102B_f32 float64 = 2.48745663981195213739e-4
	exp10MaxL10_f32 float64 = 38.230809449325611792
)

// Float32 constants for FastExp (Cephes expf.c)
var (
	fastExpC1_f32      float64 = 0.693359375
	fastExpC2_f32      float64 = -2.12194440e-4
	fastExpLog2EF_f32  float64 = 1.44269504088896341
	fastExpMaxLogF_f32 float64 = 88.02969187150841
	fastExpMinLogF_f32 float64 = -88.7228391116729996

	fastExpP0_f32 float64 = 1.9875691500e-4
	fastExpP1_f32 float64 = 1.3981999507e-3
	fastExpP2_f32 float64 = 8.3334519073e-3
	fastExpP3_f32 float64 = 4.1665795894e-2
	fastExpP4_f32 float64 = 1.6666665459e-1
	fastExpP5_f32 float64 = 5.0000001201e-1

	fasterExp2C_f32 float64 = 0.33971
)

// Float32 constants for Cbrt
var (
	cbrtC0_f32 float64 = 0.191502161678719066
	cbrtC1_f32 float64 = 0.697570460207922770
	cbrtC2_f32 float64 = 0.492659620528969547

	cbrt2_f32 float64 = 1.2599210498948731648 // 2^(1/3)
	cbrt4_f32 float64 = 1.5874010519681994748 // 2^(2/3)
)

// Sin/Cos Maclaurin terms. The last term is x^17 for sin and x^18 for cos.
const (
	sinTerms = 9
	cosTerms = 10
)
