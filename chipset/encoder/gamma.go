// Copyright 2026 The ledwire Authors. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package encoder

// gamma2_8x16 expands 8-bit linear input to 16-bit gamma-2.8 output:
// round((v/255)^2.8 * 65535).
var gamma2_8x16 = [256]uint16{
	0x0000, 0x0000, 0x0000, 0x0000, 0x0001, 0x0001, 0x0002, 0x0003,
	0x0004, 0x0006, 0x0008, 0x000A, 0x000D, 0x0010, 0x0013, 0x0018,
	0x001C, 0x0021, 0x0027, 0x002E, 0x0035, 0x003C, 0x0045, 0x004E,
	0x0058, 0x0062, 0x006E, 0x007A, 0x0087, 0x0095, 0x00A4, 0x00B3,
	0x00C4, 0x00D6, 0x00E8, 0x00FC, 0x0111, 0x0127, 0x013D, 0x0155,
	0x016E, 0x0189, 0x01A4, 0x01C1, 0x01DE, 0x01FE, 0x021E, 0x023F,
	0x0262, 0x0287, 0x02AC, 0x02D3, 0x02FC, 0x0326, 0x0351, 0x037E,
	0x03AC, 0x03DC, 0x040D, 0x0440, 0x0474, 0x04AA, 0x04E2, 0x051B,
	0x0556, 0x0593, 0x05D1, 0x0611, 0x0653, 0x0696, 0x06DC, 0x0723,
	0x076C, 0x07B7, 0x0803, 0x0852, 0x08A2, 0x08F5, 0x0949, 0x099F,
	0x09F8, 0x0A52, 0x0AAE, 0x0B0D, 0x0B6D, 0x0BD0, 0x0C34, 0x0C9B,
	0x0D04, 0x0D6F, 0x0DDC, 0x0E4C, 0x0EBE, 0x0F32, 0x0FA8, 0x1020,
	0x109B, 0x1118, 0x1198, 0x121A, 0x129E, 0x1325, 0x13AE, 0x1439,
	0x14C7, 0x1558, 0x15EB, 0x1680, 0x1718, 0x17B3, 0x1850, 0x18F0,
	0x1992, 0x1A37, 0x1ADF, 0x1B89, 0x1C36, 0x1CE5, 0x1D98, 0x1E4D,
	0x1F05, 0x1FC0, 0x207D, 0x213D, 0x2200, 0x22C6, 0x238F, 0x245B,
	0x252A, 0x25FB, 0x26D0, 0x27A7, 0x2882, 0x295F, 0x2A40, 0x2B23,
	0x2C0A, 0x2CF3, 0x2DE0, 0x2ED0, 0x2FC3, 0x30B9, 0x31B2, 0x32AF,
	0x33AE, 0x34B1, 0x35B7, 0x36C1, 0x37CD, 0x38DD, 0x39F1, 0x3B07,
	0x3C21, 0x3D3E, 0x3E5F, 0x3F83, 0x40AA, 0x41D5, 0x4303, 0x4435,
	0x456A, 0x46A3, 0x47DF, 0x491F, 0x4A62, 0x4BA9, 0x4CF4, 0x4E42,
	0x4F94, 0x50E9, 0x5242, 0x539F, 0x54FF, 0x5663, 0x57CB, 0x5936,
	0x5AA6, 0x5C19, 0x5D90, 0x5F0A, 0x6089, 0x620B, 0x6391, 0x651C,
	0x66AA, 0x683B, 0x69D1, 0x6B6B, 0x6D09, 0x6EAA, 0x7050, 0x71FA,
	0x73A8, 0x7559, 0x770F, 0x78C9, 0x7A87, 0x7C4A, 0x7E10, 0x7FDA,
	0x81A9, 0x837C, 0x8553, 0x872E, 0x890D, 0x8AF1, 0x8CD9, 0x8EC5,
	0x90B6, 0x92AB, 0x94A4, 0x96A1, 0x98A3, 0x9AA9, 0x9CB4, 0x9EC3,
	0xA0D7, 0xA2EF, 0xA50B, 0xA72C, 0xA952, 0xAB7B, 0xADAA, 0xAFDD,
	0xB214, 0xB451, 0xB691, 0xB8D7, 0xBB21, 0xBD6F, 0xBFC3, 0xC21B,
	0xC477, 0xC6D9, 0xC93F, 0xCBAA, 0xCE19, 0xD08E, 0xD307, 0xD585,
	0xD807, 0xDA8F, 0xDD1C, 0xDFAD, 0xE243, 0xE4DE, 0xE77E, 0xEA23,
	0xECCD, 0xEF7C, 0xF230, 0xF4E9, 0xF7A7, 0xFA6A, 0xFD32, 0xFFFF,
}
