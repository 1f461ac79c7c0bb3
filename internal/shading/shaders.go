package shading

// Scene shader: every instance is drawn either flat-colored or textured
// (bUseTexture), and either unlit or shaded by one directional light plus one
// point light (bUseLighting). Texture coordinates are tiled by UVscale at the
// vertex stage. Vertex attribute and matrix names follow the renderer's
// conventions so matModel/matView/matProjection are bound at draw time.
const (
	sceneVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform vec2 UVscale;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragTexCoord = vertexTexCoord * UVscale;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	sceneFS = `#version 330
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;

struct Material {
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};
struct DirectionalLight {
  vec3 direction;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};
struct PointLight {
  vec3 position;
  vec3 ambient;
  vec3 diffuse;
  vec3 specular;
  bool bActive;
};
#define NR_POINT_LIGHTS 1

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NR_POINT_LIGHTS];

out vec4 finalColor;

vec3 shadeDirectional(DirectionalLight light, vec3 N, vec3 V, vec3 base) {
  vec3 L = normalize(-light.direction);
  float diff = max(dot(N, L), 0.0);
  vec3 R = reflect(-L, N);
  float spec = pow(max(dot(V, R), 0.0), material.shininess);
  vec3 ambient = light.ambient * base;
  vec3 diffuse = light.diffuse * diff * base * material.diffuseColor;
  vec3 specular = light.specular * spec * material.specularColor;
  return ambient + diffuse + specular;
}

vec3 shadePoint(PointLight light, vec3 N, vec3 V, vec3 base) {
  vec3 L = normalize(light.position - fragPosition);
  float diff = max(dot(N, L), 0.0);
  vec3 R = reflect(-L, N);
  float spec = pow(max(dot(V, R), 0.0), material.shininess);
  vec3 ambient = light.ambient * base;
  vec3 diffuse = light.diffuse * diff * base * material.diffuseColor;
  vec3 specular = light.specular * spec * material.specularColor;
  return ambient + diffuse + specular;
}

void main() {
  vec4 base = bUseTexture ? texture(objectTexture, fragTexCoord) : objectColor;
  if (!bUseLighting) {
    finalColor = base;
    return;
  }
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPosition - fragPosition);
  vec3 lit = vec3(0.0);
  if (directionalLight.bActive) {
    lit += shadeDirectional(directionalLight, N, V, base.rgb);
  }
  for (int i = 0; i < NR_POINT_LIGHTS; i++) {
    if (pointLights[i].bActive) {
      lit += shadePoint(pointLights[i], N, V, base.rgb);
    }
  }
  finalColor = vec4(lit, base.a);
}
`
)
