package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TemplateFiles is the content of a minimal VrTemplate checkout, keyed by
// slash-separated path relative to the template root.
var TemplateFiles = map[string]string{
	"assets/readme.txt":     "Put your VR Template assets here.\n",
	"assets/panels/ui.json": "{\"title\": \"VR Template\"}\n",
	"res/values/strings.xml": `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="app_name">VR Template</string>
</resources>
`,
	"res/raw/.keep": "",
	"Src/OvrApp.h":  "class OvrApp;\n",
	"Src/OvrApp.cpp": `#include "OvrApp.h"

extern "C" {
jlong Java_com_yourcompany_vrtemplate_MainActivity_nativeSetAppInterface( JNIEnv * jni, jclass clazz, jobject activity )
{
	return 0;
}
}
`,
	"Projects/Android/jni/Android.mk":       "LOCAL_MODULE := vrtemplate\n",
	"Projects/Android/jni/Application.mk":   "APP_ABI := armeabi-v7a\n",
	"Projects/Android/AndroidManifest.xml": `<manifest xmlns:android="http://schemas.android.com/apk/res/android"
	package="com.yourcompany.vrtemplate">
	<application android:label="@string/app_name">
		<activity android:name="com.yourcompany.vrtemplate.MainActivity"/>
	</application>
</manifest>
`,
	"Projects/Android/build.bat":       "@python build.py %1 %2 vrtemplate yourcompany\n",
	"Projects/Android/build.py":        "# vrtemplate build for com.yourcompany.vrtemplate\nprint('vrtemplate')\n",
	"Projects/Android/build.gradle":    "applicationId \"com.yourcompany.vrtemplate\"\narchivesBaseName = \"VrTemplate\"\n",
	"Projects/Android/settings.gradle": "rootProject.name = \"VrTemplate\"\n",
	"Projects/Android/local.properties": "sdk.dir=/opt/android\n",
	"java/com/yourcompany/vrtemplate/MainActivity.java": `package com.yourcompany.vrtemplate;

public class MainActivity extends VrActivity {
	public static final String TAG = "VrTemplate";
	static { System.loadLibrary("vrtemplate"); }
}
`,
}

// WriteTemplateTree lays out TemplateFiles under root.
func WriteTemplateTree(t *testing.T, root string) {
	t.Helper()

	for rel, content := range TemplateFiles {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", path, err)
		}
	}
}

// NewTemplateWorkspace creates a parent directory holding a "VrTemplate"
// checkout and returns the template root. Generated projects land next to it.
func NewTemplateWorkspace(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "VrTemplate")
	WriteTemplateTree(t, root)
	return root
}
