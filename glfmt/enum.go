package glfmt

// Enum is a native OpenGL enum value.
//
type Enum uint32

// The subset of GL enums referenced by the translation tables. Values
// are shared across GL, GLES and WebGL.
const (
	// pixel formats
	RED             Enum = 0x1903
	GREEN           Enum = 0x1904
	BLUE            Enum = 0x1905
	RG              Enum = 0x8227
	RGB             Enum = 0x1907
	RGBA            Enum = 0x1908
	BGR             Enum = 0x80e0
	BGRA            Enum = 0x80e1
	RED_INTEGER     Enum = 0x8d94
	RG_INTEGER      Enum = 0x8228
	RGB_INTEGER     Enum = 0x8d98
	RGBA_INTEGER    Enum = 0x8d99
	LUMINANCE       Enum = 0x1909
	LUMINANCE_ALPHA Enum = 0x190a
	ALPHA           Enum = 0x1906
	SRGB            Enum = 0x8c40
	SRGB_ALPHA      Enum = 0x8c42
	DEPTH_COMPONENT Enum = 0x1902
	DEPTH_STENCIL   Enum = 0x84f9
	STENCIL_INDEX   Enum = 0x1901

	// pixel types
	UNSIGNED_BYTE                  Enum = 0x1401
	BYTE                           Enum = 0x1400
	UNSIGNED_SHORT                 Enum = 0x1403
	SHORT                          Enum = 0x1402
	UNSIGNED_INT                   Enum = 0x1405
	INT                            Enum = 0x1404
	HALF_FLOAT                     Enum = 0x140b
	FLOAT                          Enum = 0x1406
	UNSIGNED_SHORT_5_6_5           Enum = 0x8363
	UNSIGNED_SHORT_4_4_4_4         Enum = 0x8033
	UNSIGNED_SHORT_5_5_5_1         Enum = 0x8034
	UNSIGNED_INT_2_10_10_10_REV    Enum = 0x8368
	UNSIGNED_INT_10F_11F_11F_REV   Enum = 0x8c3b
	UNSIGNED_INT_5_9_9_9_REV       Enum = 0x8c3e
	UNSIGNED_INT_24_8              Enum = 0x84fa
	FLOAT_32_UNSIGNED_INT_24_8_REV Enum = 0x8dad

	// sized internal formats
	R8           Enum = 0x8229
	R8_SNORM     Enum = 0x8f94
	R8UI         Enum = 0x8232
	R8I          Enum = 0x8231
	R16          Enum = 0x822a
	R16_SNORM    Enum = 0x8f98
	R16UI        Enum = 0x8234
	R16I         Enum = 0x8233
	R16F         Enum = 0x822d
	R32UI        Enum = 0x8236
	R32I         Enum = 0x8235
	R32F         Enum = 0x822e
	RG8          Enum = 0x822b
	RG8_SNORM    Enum = 0x8f95
	RG8UI        Enum = 0x8238
	RG8I         Enum = 0x8237
	RG16         Enum = 0x822c
	RG16_SNORM   Enum = 0x8f99
	RG16UI       Enum = 0x823a
	RG16I        Enum = 0x8239
	RG16F        Enum = 0x822f
	RG32UI       Enum = 0x823c
	RG32I        Enum = 0x823b
	RG32F        Enum = 0x8230
	RGB8         Enum = 0x8051
	RGB8_SNORM   Enum = 0x8f96
	SRGB8        Enum = 0x8c41
	RGB8UI       Enum = 0x8d7d
	RGB8I        Enum = 0x8d8f
	RGB16        Enum = 0x8054
	RGB16_SNORM  Enum = 0x8f9a
	RGB16UI      Enum = 0x8d77
	RGB16I       Enum = 0x8d89
	RGB16F       Enum = 0x881b
	RGB32UI      Enum = 0x8d71
	RGB32I       Enum = 0x8d83
	RGB32F       Enum = 0x8815
	RGBA8        Enum = 0x8058
	RGBA8_SNORM  Enum = 0x8f97
	SRGB8_ALPHA8 Enum = 0x8c43
	RGBA8UI      Enum = 0x8d7c
	RGBA8I       Enum = 0x8d8e
	RGBA16       Enum = 0x805b
	RGBA16_SNORM Enum = 0x8f9b
	RGBA16UI     Enum = 0x8d76
	RGBA16I      Enum = 0x8d88
	RGBA16F      Enum = 0x881a
	RGBA32UI     Enum = 0x8d70
	RGBA32I      Enum = 0x8d82
	RGBA32F      Enum = 0x8814

	// compressed internal formats
	COMPRESSED_RGB_S3TC_DXT1_EXT              Enum = 0x83f0
	COMPRESSED_SRGB_S3TC_DXT1_EXT             Enum = 0x8c4c
	COMPRESSED_RGBA_S3TC_DXT1_EXT             Enum = 0x83f1
	COMPRESSED_SRGB_ALPHA_S3TC_DXT1_EXT       Enum = 0x8c4d
	COMPRESSED_RGBA_S3TC_DXT3_EXT             Enum = 0x83f2
	COMPRESSED_SRGB_ALPHA_S3TC_DXT3_EXT       Enum = 0x8c4e
	COMPRESSED_RGBA_S3TC_DXT5_EXT             Enum = 0x83f3
	COMPRESSED_SRGB_ALPHA_S3TC_DXT5_EXT       Enum = 0x8c4f
	COMPRESSED_RGB8_ETC2                      Enum = 0x9274
	COMPRESSED_SRGB8_ETC2                     Enum = 0x9275
	COMPRESSED_RGB8_PUNCHTHROUGH_ALPHA1_ETC2  Enum = 0x9276
	COMPRESSED_SRGB8_PUNCHTHROUGH_ALPHA1_ETC2 Enum = 0x9277
	COMPRESSED_RGBA8_ETC2_EAC                 Enum = 0x9278
	COMPRESSED_SRGB8_ALPHA8_ETC2_EAC          Enum = 0x9279
	COMPRESSED_R11_EAC                        Enum = 0x9270
	COMPRESSED_SIGNED_R11_EAC                 Enum = 0x9271
	COMPRESSED_RG11_EAC                       Enum = 0x9272
	COMPRESSED_SIGNED_RG11_EAC                Enum = 0x9273
	COMPRESSED_RGBA_BPTC_UNORM                Enum = 0x8e8c
	COMPRESSED_SRGB_ALPHA_BPTC_UNORM          Enum = 0x8e8d
	COMPRESSED_RGB_BPTC_SIGNED_FLOAT          Enum = 0x8e8e
	COMPRESSED_RGB_BPTC_UNSIGNED_FLOAT        Enum = 0x8e8f
	COMPRESSED_RGBA_ASTC_4x4_KHR              Enum = 0x93b0
	COMPRESSED_SRGB8_ALPHA8_ASTC_4x4_KHR      Enum = 0x93d0
	COMPRESSED_RGBA_ASTC_8x8_KHR              Enum = 0x93b7
	COMPRESSED_SRGB8_ALPHA8_ASTC_8x8_KHR      Enum = 0x93d7
	COMPRESSED_RGBA_ASTC_10x10_KHR            Enum = 0x93bb
	COMPRESSED_SRGB8_ALPHA8_ASTC_10x10_KHR    Enum = 0x93db
)
