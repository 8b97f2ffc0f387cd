package restype

import "strings"

// extToType is the closed extension -> canonical type name table.
var extToType = map[string]string{
	"swfmovie":           "SwfMovie",
	"dx10pixelshader":    "Dx10PixelShader",
	"havokphysicsdata":   "HavokPhysicsData",
	"treemeshset":        "TreeMeshSet",
	"terrainheightfield": "TerrainHeightfield",
	"itexture":           "ITexture",
	"animtreeinfo":       "AnimTreeInfo",
	"irradiancevolume":   "IrradianceVolume",
	"visualterrain":      "VisualTerrain",
	"skinnedmeshset":     "SkinnedMeshSet",
	"dx10vertexshader":   "Dx10VertexShader",
	"aimanimation":       "AimAnimation",
	"occludermesh":       "OccluderMesh",
	"dx9shaderdatabase":  "Dx9ShaderDatabase",
	"wave":               "Wave",
	"sootmesh":           "SootMesh",
	"terrainmaterialmap": "TerrainMaterialMap",
	"rigidmeshset":       "RigidMeshSet",
	"compositemeshset":   "CompositeMeshSet",
	"watermesh":          "WaterMesh",
	"visualwater":        "VisualWater",
	"dx9vertexshader":    "Dx9VertexShader",
	"dx9pixelshader":     "Dx9PixelShader",
	"dx11shaderdatabase": "Dx11ShaderDatabase",
	"dx11pixelshader":    "Dx11PixelShader",
	"grannymodel":        "GrannyModel",
	"ragdollresource":    "RagdollResource",
	"grannyanimation":    "GrannyAnimation",
	"weathersystem":      "WeatherSystem",
	"dx11vertexshader":   "Dx11VertexShader",
	"terrain":            "Terrain",
	"impulseresponse":    "ImpulseResponse",
	"binkmemory":         "BinkMemory",
	"deltaanimation":     "DeltaAnimation",
	"dx10shaderdatabase": "Dx10ShaderDatabase",
	"meshdata":           "MeshData",
	"xenonpixelshader":   "XenonPixelShader",
	"xenonvertexshader":  "XenonVertexShader",
	"xenonshaderdatabase": "XenonShaderDatabase",
	"xenontexture":        "XenonTexture",
	"ps3pixelshader":      "Ps3PixelShader",
	"ps3vertexshader":     "Ps3VertexShader",
	"ps3shaderdatabase":   "Ps3ShaderDatabase",
	"ps3texture":          "Ps3Texture",
	"pathdatadefinition":  "PathDataDefinition",
	"nonres":              "<non-resource>",
	"dbx":                 "<non-resource>",
	"bin":                 "<non-resource>",
	"dbmanifest":          "<non-resource>",
	"dbxdeleted":          "*deleted*",
	"resdeleted":          "*deleted*",
}

// ToType returns the canonical resource-type name for a lowercase
// extension (without the leading dot), and whether it is recognized.
func ToType(ext string) (string, bool) {
	t, ok := extToType[strings.ToLower(ext)]
	return t, ok
}

// Known reports whether ext is one of the closed set of recognized
// extensions.
func Known(ext string) bool {
	_, ok := extToType[strings.ToLower(ext)]
	return ok
}

// ToExtension reverse-maps a canonical type name back to the on-disk
// extension it was packed from, disambiguated where necessary by the
// stored archive path's own suffix.
//
// "*deleted*" recovers to "dbxdeleted" when storedPath ends in ".dbx",
// else "resdeleted". "<non-resource>" recovers to "nonres" when
// storedPath ends in ".res"; otherwise storedPath's own suffix (".dbx",
// ".bin", ".dbmanifest") is the extension, since those three are written
// through unchanged rather than rewritten to ".res" when packed. Every
// other type name lowercases directly back to its extension key: the
// table's values are just title-cased spellings of their keys, so no
// reverse scan is needed.
func ToExtension(typeName, storedPath string) string {
	switch typeName {
	case "*deleted*":
		if strings.HasSuffix(storedPath, ".dbx") {
			return "dbxdeleted"
		}
		return "resdeleted"
	case "<non-resource>":
		if strings.HasSuffix(storedPath, ".res") {
			return "nonres"
		}
		if idx := strings.LastIndexByte(storedPath, '.'); idx >= 0 {
			return storedPath[idx+1:]
		}
		return "nonres"
	}

	return strings.ToLower(typeName)
}
